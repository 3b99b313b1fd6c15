package bootstrap

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/GoSim-25-26J-441/seqr-views/config"
	"github.com/GoSim-25-26J-441/seqr-views/internal/projection"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("text in development", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&buf, config.AppConfig{Environment: "development", LogLevel: "warn", Version: "1.2.3"})
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
		assert.Contains(t, buf.String(), "version=1.2.3")
	})

	t.Run("json in production", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&buf, config.AppConfig{Environment: "production", LogLevel: "info"})
		require.NoError(t, err)

		logger.Info("started")
		assert.Contains(t, buf.String(), `"msg":"started"`)
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := NewLogger(&bytes.Buffer{}, config.AppConfig{LogLevel: "chatty"})
		assert.Error(t, err)
	})
}

func TestNewProjector(t *testing.T) {
	logger, err := NewLogger(&bytes.Buffer{}, config.AppConfig{LogLevel: "info"})
	require.NoError(t, err)

	t.Run("default catalog", func(t *testing.T) {
		p, err := NewProjector(&config.Config{Media: config.MediaConfig{Root: "https://media.example.org/"}}, logger)
		require.NoError(t, err)

		img, _ := p.Family(projection.MapRecord{"guid": "F1", "pedigree_image": "f.png"}, projection.Caller{}).Get("pedigreeImage")
		assert.Equal(t, "https://media.example.org/f.png", img)
	})

	t.Run("catalog file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
kinds:
  project: {public: [guid]}
  family: {public: [guid, analysis_notes]}
  individual: {public: [guid]}
  sample: {public: [guid]}
  dataset: {public: [guid]}
`), 0o600))

		p, err := NewProjector(&config.Config{Catalog: config.CatalogConfig{File: path}}, logger)
		require.NoError(t, err)
		assert.Len(t, p.Catalog().Fields(projection.KindFamily, true), 2)
	})

	t.Run("incomplete catalog is a config error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("kinds:\n  project: {public: [guid]}\n"), 0o600))

		_, err := NewProjector(&config.Config{Catalog: config.CatalogConfig{File: path}}, logger)
		assert.ErrorIs(t, err, projection.ErrConfig)
	})
}

func TestOpenRedis(t *testing.T) {
	ctx := context.Background()

	client, err := OpenRedis(ctx, config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)

	mr := miniredis.RunT(t)
	client, err = OpenRedis(ctx, config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	require.NotNil(t, client)
	_ = client.Close()
}

func TestOpenDB_MissingDSN(t *testing.T) {
	_, err := OpenDB(context.Background(), DBOptions{})
	assert.EqualError(t, err, "DB_DSN is not set")
}

func TestBuildRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, err := NewLogger(&bytes.Buffer{}, config.AppConfig{LogLevel: "info"})
	require.NoError(t, err)
	p, err := NewProjector(&config.Config{}, logger)
	require.NoError(t, err)

	r := BuildRouter(RouterDeps{
		ServiceName:    "seqr-views",
		Version:        "test",
		CORSOrigins:    []string{"https://seqr.example.org"},
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		Projector:      p,
		Logger:         logger,
	})

	t.Run("health without dependencies", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
		assert.Contains(t, rr.Body.String(), `"db":"disabled"`)
	})

	t.Run("api requires a user", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/projects", nil)
		req.Header.Set("Origin", "https://seqr.example.org")
		req.Header.Set("Access-Control-Request-Method", "GET")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, "https://seqr.example.org", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestSetGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	SetGinMode("production")
	assert.Equal(t, gin.ReleaseMode, gin.Mode())
	SetGinMode("test")
	assert.Equal(t, gin.TestMode, gin.Mode())
}
