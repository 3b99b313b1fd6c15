package postgres

import (
	"testing"

	"github.com/GoSim-25-26J-441/seqr-views/config"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
		want string
	}{
		{
			name: "fields",
			cfg:  config.DatabaseConfig{Host: "db", Port: 5432, User: "seqr", Password: "pw", Name: "seqrdb"},
			want: "host=db port=5432 user=seqr password=pw dbname=seqrdb sslmode=disable",
		},
		{
			name: "empty password",
			cfg:  config.DatabaseConfig{Host: "db", Port: 5432, User: "seqr", Name: "seqrdb"},
			want: "host=db port=5432 user=seqr password='' dbname=seqrdb sslmode=disable",
		},
		{
			name: "password with spaces and quotes",
			cfg:  config.DatabaseConfig{Host: "db", Port: 5432, User: "seqr", Password: `it's secret`, Name: "seqrdb"},
			want: `host=db port=5432 user=seqr password='it\'s secret' dbname=seqrdb sslmode=disable`,
		},
		{
			name: "explicit dsn",
			cfg:  config.DatabaseConfig{Host: "db", DSN: "postgres://seqr@db/seqrdb"},
			want: "postgres://seqr@db/seqrdb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DSN(&tt.cfg))
		})
	}
}
