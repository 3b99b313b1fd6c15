package postgres

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/seqr-views/config"
)

// DSN returns a lib/pq connection string. An explicit DB_DSN wins over the
// individual fields.
func DSN(cfg *config.DatabaseConfig) string {
	if strings.TrimSpace(cfg.DSN) != "" {
		return cfg.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, quote(cfg.Password), cfg.Name,
	)
}

// quote escapes a keyword/value parameter that may hold spaces or quotes.
func quote(v string) string {
	if v == "" {
		return "''"
	}
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
