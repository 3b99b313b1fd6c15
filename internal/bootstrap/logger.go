package bootstrap

import (
	"io"
	"log/slog"

	"github.com/GoSim-25-26J-441/seqr-views/config"
)

// NewLogger builds the process logger: JSON in production, text otherwise.
func NewLogger(w io.Writer, app config.AppConfig) (*slog.Logger, error) {
	level, err := config.ParseLogLevel(app.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if app.IsProduction() {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h).With(slog.String("version", app.Version)), nil
}
