package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"inventory-portal/internal/config"
	"inventory-portal/internal/database"
	"inventory-portal/internal/hash"
	"inventory-portal/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(mode config.Mode) *config.Config {
	return &config.Config{
		ServerPort:    "0",
		SessionSecret: "test-secret",
		Mode:          mode,
		LogLevel:      "error",
		TemplateGlob:  "../../web/templates/*.html",
		StaticDir:     "../../web/static",
	}
}

func setupRouter(t *testing.T, mode config.Mode) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, database.Init(filepath.Join(t.TempDir(), "test.db")))
	return NewRouter(testConfig(mode))
}

func seedUser(t *testing.T, hasher hash.Hasher, username, password string, role models.Role) {
	t.Helper()
	h, err := hasher.Hash(password)
	require.NoError(t, err)
	require.NoError(t, database.CreateUser(&models.User{
		Username:     username,
		Email:        username + "@techcorp.local",
		PasswordHash: h,
		Role:         role,
	}))
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.Header.Add("Cookie", c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookies ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.Header.Add("Cookie", c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := setupRouter(t, config.ModeTrainingFidelity)

	w := get(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestRootRedirectsToLogin(t *testing.T) {
	r := setupRouter(t, config.ModeTrainingFidelity)

	w := get(r, "/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAnonymousIsRedirected(t *testing.T) {
	r := setupRouter(t, config.ModeTrainingFidelity)

	for _, path := range []string{"/dashboard", "/inventory", "/profile", "/admin"} {
		w := get(r, path)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
}

func TestLoginEstablishesSession(t *testing.T) {
	r := setupRouter(t, config.ModeTrainingFidelity)
	seedUser(t, hash.SHA256{}, "david.chen", "abc123", models.RoleEmployee)

	w := postForm(r, "/login", url.Values{
		"username": {"david.chen"},
		"password": {"abc123"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))

	cookie := w.Header().Get("Set-Cookie")
	require.NotEmpty(t, cookie)

	dash := get(r, "/dashboard", cookie)
	assert.Equal(t, http.StatusOK, dash.Code)
	assert.Contains(t, dash.Body.String(), "Dashboard")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupRouter(t, config.ModeTrainingFidelity)
	seedUser(t, hash.SHA256{}, "david.chen", "abc123", models.RoleEmployee)

	w := postForm(r, "/login", url.Values{
		"username": {"david.chen"},
		"password": {"nope"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")
}

func TestAdminGateRedirectsNonAdmins(t *testing.T) {
	r := setupRouter(t, config.ModeTrainingFidelity)
	seedUser(t, hash.SHA256{}, "david.chen", "abc123", models.RoleEmployee)

	login := postForm(r, "/login", url.Values{
		"username": {"david.chen"},
		"password": {"abc123"},
	})
	cookie := login.Header().Get("Set-Cookie")

	w := get(r, "/admin", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"), "forbidden is a redirect, not a 403")
}

// End-to-end reproduction of the account takeover: jennifer.morgan
// requests a reset with her own password, then applies the token she
// received against the admin account.
func TestResetFlowAccountTakeover(t *testing.T) {
	r := setupRouter(t, config.ModeTrainingFidelity)
	seedUser(t, hash.SHA256{}, "jennifer.morgan", "topsecret", models.RoleManager)
	seedUser(t, hash.SHA256{}, "admin", "adminpass", models.RoleAdmin)

	forgot := postForm(r, "/forgot-password", url.Values{
		"username":         {"jennifer.morgan"},
		"current_password": {"topsecret"},
	})
	require.Equal(t, http.StatusFound, forgot.Code)

	loc := forgot.Header().Get("Location")
	require.Contains(t, loc, "/reset-password?temp-forgot-password-token=")
	token := strings.TrimPrefix(loc, "/reset-password?temp-forgot-password-token=")
	require.NotEmpty(t, token)

	// the reset form prefills the token holder's username
	form := get(r, loc)
	require.Equal(t, http.StatusOK, form.Code)
	assert.Contains(t, form.Body.String(), "jennifer.morgan")

	apply := postForm(r, loc, url.Values{
		"username":         {"admin"},
		"new_password":     {"x"},
		"confirm_password": {"x"},
	})
	require.Equal(t, http.StatusFound, apply.Code)
	require.Equal(t, "/login", apply.Header().Get("Location"))

	login := postForm(r, "/login", url.Values{
		"username": {"admin"},
		"password": {"x"},
	})
	assert.Equal(t, http.StatusFound, login.Code)
	assert.Equal(t, "/dashboard", login.Header().Get("Location"))
}

func TestHardenedResetFlowRejectsTakeover(t *testing.T) {
	r := setupRouter(t, config.ModeHardened)
	seedUser(t, hash.Bcrypt{}, "jennifer.morgan", "topsecret", models.RoleManager)
	seedUser(t, hash.Bcrypt{}, "admin", "adminpass", models.RoleAdmin)

	forgot := postForm(r, "/forgot-password", url.Values{
		"username":         {"jennifer.morgan"},
		"current_password": {"topsecret"},
	})
	require.Equal(t, http.StatusFound, forgot.Code)
	loc := forgot.Header().Get("Location")

	apply := postForm(r, loc, url.Values{
		"username":         {"admin"},
		"new_password":     {"x"},
		"confirm_password": {"x"},
	})
	assert.Equal(t, http.StatusOK, apply.Code)
	assert.Contains(t, apply.Body.String(), "Invalid or expired reset token")

	login := postForm(r, "/login", url.Values{
		"username": {"admin"},
		"password": {"adminpass"},
	})
	assert.Equal(t, http.StatusFound, login.Code, "admin password must be unchanged")
}
