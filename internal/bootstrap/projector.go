package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/GoSim-25-26J-441/seqr-views/config"
	"github.com/GoSim-25-26J-441/seqr-views/internal/projection"
)

// NewProjector loads the field catalog (the compiled-in default unless
// CATALOG_FILE is set) and builds the projector. Catalog errors are fatal
// configuration errors.
func NewProjector(cfg *config.Config, logger *slog.Logger) (*projection.Projector, error) {
	var (
		cat *projection.Catalog
		err error
	)
	if cfg.Catalog.File != "" {
		cat, err = projection.LoadCatalogFile(cfg.Catalog.File)
	} else {
		cat, err = projection.DefaultCatalog()
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return projection.New(cat,
		projection.WithMediaRoot(cfg.Media.Root),
		projection.WithLogger(logger.With(slog.String("component", "projection"))),
	)
}
