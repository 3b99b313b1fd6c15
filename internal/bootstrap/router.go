package bootstrap

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/GoSim-25-26J-441/seqr-views/internal/analysedby"
	httpapi "github.com/GoSim-25-26J-441/seqr-views/internal/api/http"
	"github.com/GoSim-25-26J-441/seqr-views/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/seqr-views/internal/api/http/routes"
	"github.com/GoSim-25-26J-441/seqr-views/internal/projection"
	"github.com/GoSim-25-26J-441/seqr-views/internal/records"
	"github.com/GoSim-25-26J-441/seqr-views/internal/users"
	"github.com/GoSim-25-26J-441/seqr-views/internal/views/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	AnalysedByTTL  time.Duration

	DB        *pgxpool.Pool
	Records   *sql.DB
	Redis     *redis.Client
	Projector *projection.Projector
	Logger    *slog.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.CORSOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-User-Id", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	var db, cache httpapi.Pinger
	if dep.DB != nil {
		db = dep.DB
	}
	if dep.Redis != nil {
		cache = httpapi.RedisPinger{Client: dep.Redis}
	}
	httpapi.NewHealthHandler(dep.ServiceName, dep.Version, db, cache).RegisterRoutes(r)

	var source analysedby.Source = analysedby.NewPostgresSource(dep.DB)
	if dep.Redis != nil {
		source = analysedby.NewCache(dep.Redis, source,
			analysedby.WithTTL(dep.AnalysedByTTL),
			analysedby.WithLogger(dep.Logger.With(slog.String("component", "analysed_by_cache"))),
		)
	}

	limited := r.Group("")
	limited.Use(middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	routes.RegisterV1(limited, routes.V1Deps{
		Users:  users.NewRepo(dep.DB),
		Views:  service.NewViewService(records.NewRepository(dep.Records), dep.Projector, source),
		Logger: dep.Logger,
	})

	return r
}
