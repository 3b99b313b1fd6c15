package routes

import (
	"log/slog"

	"github.com/GoSim-25-26J-441/seqr-views/internal/auth"
	viewshttp "github.com/GoSim-25-26J-441/seqr-views/internal/views/http"
	"github.com/GoSim-25-26J-441/seqr-views/internal/views/service"

	"github.com/gin-gonic/gin"
)

type V1Deps struct {
	Users  auth.UserStore
	Views  *service.ViewService
	Logger *slog.Logger
}

func RegisterV1(r gin.IRouter, dep V1Deps) {
	api := r.Group("/api/v1")
	api.Use(auth.WithUser(dep.Users, dep.Logger))

	viewshttp.New(dep.Views, dep.Logger).Register(api)
}
