package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GoSim-25-26J-441/seqr-views/internal/users"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeStore struct {
	users     map[string]*users.User
	accessErr error
}

func (f *fakeStore) ByUsername(_ context.Context, username string) (*users.User, error) {
	if username == "broken" {
		return nil, errors.New("connection refused")
	}
	u, ok := f.users[username]
	if !ok {
		return nil, users.ErrUnknownUser
	}
	return u, nil
}

func (f *fakeStore) ProjectAccess(_ context.Context, u *users.User) (*users.Access, error) {
	if f.accessErr != nil {
		return nil, f.accessErr
	}
	return users.NewAccess(u, []string{"P1"}, nil), nil
}

func newRouter(store UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(WithUser(store, slog.New(slog.DiscardHandler)))
	r.GET("/whoami", func(c *gin.Context) {
		a := AccessFrom(c)
		c.JSON(http.StatusOK, gin.H{"username": Username(c), "canViewP1": a.CanView("P1")})
	})
	return r
}

func TestWithUser(t *testing.T) {
	store := &fakeStore{users: map[string]*users.User{"ana": {ID: 2, Username: "ana", IsActive: true}}}

	tests := []struct {
		name     string
		header   string
		store    *fakeStore
		wantCode int
		wantBody string
	}{
		{name: "known user", header: "ana", store: store, wantCode: http.StatusOK, wantBody: `"canViewP1":true`},
		{name: "missing header", header: "", store: store, wantCode: http.StatusUnauthorized, wantBody: "missing X-User-Id header"},
		{name: "unknown user", header: "bob", store: store, wantCode: http.StatusUnauthorized, wantBody: "unknown user"},
		{name: "store failure", header: "broken", store: store, wantCode: http.StatusInternalServerError, wantBody: "load user failed"},
		{
			name:     "access failure",
			header:   "ana",
			store:    &fakeStore{users: store.users, accessErr: errors.New("timeout")},
			wantCode: http.StatusInternalServerError,
			wantBody: "load project access failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set(HeaderUser, tt.header)
			}
			rr := httptest.NewRecorder()
			newRouter(tt.store).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}

func TestAccessFrom_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, AccessFrom(c))
	assert.Empty(t, Username(c))
}
