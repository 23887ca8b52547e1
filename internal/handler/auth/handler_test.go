package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/middleware"
	"github.com/diegoportaz91-dot/saludvalleuco/internal/model"
	authService "github.com/diegoportaz91-dot/saludvalleuco/internal/service/auth"
)

type fakeAdminRepo struct {
	admins map[string]*model.Admin
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *model.Admin) error {
	r.admins[admin.Username] = admin
	return nil
}

func (r *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*model.Admin, error) {
	admin, ok := r.admins[username]
	if !ok {
		return nil, errors.New("admin not found")
	}
	return admin, nil
}

func (r *fakeAdminRepo) Count(_ context.Context) (int, error) {
	return len(r.admins), nil
}

// newTestRouter wires the login handler, the auth gate and a stub dashboard
// the way the real router does.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("secreta"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeAdminRepo{admins: map[string]*model.Admin{
		"admin": {
			ID:           uuid.New(),
			Username:     "admin",
			Email:        "admin@example.com",
			PasswordHash: string(hash),
		},
	}}

	svc := authService.NewService(repo, "test-secret", 1)
	auth := middleware.NewAuthMiddleware(svc)
	h := NewHandler(svc, auth, false)

	r := gin.New()
	h.RegisterRoutes(&r.RouterGroup)

	admin := r.Group("/admin")
	admin.Use(auth.RequireAdmin())
	h.RegisterAdminRoutes(admin)
	admin.GET("", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAnonymousAdminRedirectsToLogin(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next="+url.QueryEscape("/admin"), w.Header().Get("Location"))
}

func TestLoginLandsBackOnRequestedPage(t *testing.T) {
	r := newTestRouter(t)

	form := url.Values{"username": {"admin"}, "password": {"secreta"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login?next=%2Fadmin", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session, "login must set the session cookie")
	assert.True(t, session.HttpOnly)

	// The cookie now opens the gate.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(session)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestRouter(t)

	form := url.Values{"username": {"admin"}, "password": {"incorrecta"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Usuario o contraseña incorrectos")
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginIgnoresOffsiteNext(t *testing.T) {
	r := newTestRouter(t)

	for _, next := range []string{"https://evil.example", "//evil.example", ""} {
		form := url.Values{"username": {"admin"}, "password": {"secreta"}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login?next="+url.QueryEscape(next), strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin", w.Header().Get("Location"), "next=%q", next)
	}
}

func TestLoginPageRedirectsAuthenticatedVisitor(t *testing.T) {
	r := newTestRouter(t)

	form := url.Values{"username": {"admin"}, "password": {"secreta"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusFound, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(cookies[0])
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestLogoutClearsSession(t *testing.T) {
	r := newTestRouter(t)

	form := url.Values{"username": {"admin"}, "password": {"secreta"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusFound, w.Code)
	session := w.Result().Cookies()[0]

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	req.AddCookie(session)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	var cleared *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Less(t, cleared.MaxAge, 0)
}
