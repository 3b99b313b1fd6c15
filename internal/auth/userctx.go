package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/GoSim-25-26J-441/seqr-views/internal/users"
	"github.com/gin-gonic/gin"
)

const (
	// HeaderUser carries the username the upstream gateway authenticated.
	HeaderUser = "X-User-Id"

	CtxUsername = "username"
	CtxAccess   = "access"
)

// UserStore loads accounts and their project access.
type UserStore interface {
	ByUsername(ctx context.Context, username string) (*users.User, error)
	ProjectAccess(ctx context.Context, u *users.User) (*users.Access, error)
}

// WithUser resolves the calling user from the X-User-Id header and stores
// their Access in the Gin context.
func WithUser(store UserStore, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.GetHeader(HeaderUser))
		if username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing " + HeaderUser + " header"})
			return
		}

		u, err := store.ByUsername(c.Request.Context(), username)
		if errors.Is(err, users.ErrUnknownUser) || errors.Is(err, users.ErrInactiveUser) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
			return
		}
		if err != nil {
			logger.Error("load user", slog.String("username", username), slog.Any("error", err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "load user failed"})
			return
		}

		access, err := store.ProjectAccess(c.Request.Context(), u)
		if err != nil {
			logger.Error("load project access", slog.String("username", username), slog.Any("error", err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "load project access failed"})
			return
		}

		c.Set(CtxUsername, username)
		c.Set(CtxAccess, access)
		c.Next()
	}
}

// AccessFrom returns the Access WithUser stored, or nil.
func AccessFrom(c *gin.Context) *users.Access {
	v, ok := c.Get(CtxAccess)
	if !ok {
		return nil
	}
	a, _ := v.(*users.Access)
	return a
}

func Username(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUsername))
}
