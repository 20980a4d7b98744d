package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carecamp_backend/internal/auth/token"
	"carecamp_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

const testCookieName = "token"

type fakeRoleLookup struct {
	roles map[string]string
}

func (f *fakeRoleLookup) RoleByEmail(_ context.Context, email string) (string, error) {
	return f.roles[email], nil
}

func newTestRouter(codec *token.Codec) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Required(codec, testCookieName), func(c *gin.Context) {
		email := c.GetString(httpkit.ContextEmailKey)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

func TestRequired_NoCookie(t *testing.T) {
	codec := token.New("test-secret", time.Hour)
	r := newTestRouter(codec)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequired_BadToken(t *testing.T) {
	codec := token.New("test-secret", time.Hour)
	r := newTestRouter(codec)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "garbage"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequired_ValidToken(t *testing.T) {
	codec := token.New("test-secret", time.Hour)
	r := newTestRouter(codec)

	raw, err := codec.Issue("user@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: raw})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequireSelf(t *testing.T) {
	codec := token.New("test-secret", time.Hour)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/users/:email", Required(codec, testCookieName), RequireSelf("email"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	raw, err := codec.Issue("me@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me@example.com", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: raw})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for own resource, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/users/other@example.com", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: raw})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for someone else's resource, got %d", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	codec := token.New("test-secret", time.Hour)
	roles := &fakeRoleLookup{roles: map[string]string{
		"admin@example.com": RoleAdmin,
		"user@example.com":  "user",
	}}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", Required(codec, testCookieName), RequireAdmin(roles), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	adminToken, err := codec.Issue("admin@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	userToken, err := codec.Issue("user@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: adminToken})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: userToken})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", w.Code)
	}
}
