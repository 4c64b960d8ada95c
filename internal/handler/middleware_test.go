package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pustaka-app/backend/internal/auth"
	"github.com/pustaka-app/backend/internal/config"
)

const testCookieName = "token"

func testRoutes() config.RouteConfig {
	return config.RouteConfig{
		Protected: []string{"/api/user", "/api/admin", "/api/borrows"},
		Admin:     []string{"/api/admin"},
	}
}

func newGuardedEngine(t *testing.T, codec *auth.Codec) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RouteGuard(codec, testRoutes(), testCookieName))

	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "ok"}) }
	r.GET("/api/books", ok)
	r.GET("/api/user/profile", ok)
	r.GET("/api/admin/dashboard", ok)
	return r
}

func newTestCodec(t *testing.T) *auth.Codec {
	t.Helper()
	codec, err := auth.NewCodec("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}
	return codec
}

func issue(t *testing.T, codec *auth.Codec, userID int64, role auth.Role) string {
	t.Helper()
	tok, err := codec.Issue(userID, role, 0)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	return tok
}

func TestRouteGuard_UnprotectedPathPassesThrough(t *testing.T) {
	codec := newTestCodec(t)
	r := newGuardedEngine(t, codec)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouteGuard_ProtectedPathNoCredential(t *testing.T) {
	codec := newTestCodec(t)
	r := newGuardedEngine(t, codec)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user/profile", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body := w.Body.String(); body != `{"error":"Unauthorized"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestRouteGuard_BearerHeaderAllowed(t *testing.T) {
	codec := newTestCodec(t)
	r := newGuardedEngine(t, codec)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, codec, 1, auth.RoleUser))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestRouteGuard_CookieAllowed(t *testing.T) {
	codec := newTestCodec(t)
	r := newGuardedEngine(t, codec)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: issue(t, codec, 1, auth.RoleUser)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestRouteGuard_InvalidTokenSurfacesReason(t *testing.T) {
	codec := newTestCodec(t)
	r := newGuardedEngine(t, codec)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body := w.Body.String(); body == `{"error":"Unauthorized"}` {
		t.Fatalf("expected verification reason in body, got %s", body)
	}
}

func TestRouteGuard_AdminPathForbiddenForUser(t *testing.T) {
	codec := newTestCodec(t)
	r := newGuardedEngine(t, codec)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, codec, 1, auth.RoleUser))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if body := w.Body.String(); body != `{"error":"Forbidden"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestRouteGuard_AdminPathAllowedForAdmin(t *testing.T) {
	codec := newTestCodec(t)
	r := newGuardedEngine(t, codec)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, codec, 1, auth.RoleAdmin))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestRouteGuard_ExpiredToken(t *testing.T) {
	codec := newTestCodec(t)
	r := newGuardedEngine(t, codec)

	tok, err := codec.Issue(1, auth.RoleUser, time.Millisecond)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRouteGuard_OptionsPassesThrough(t *testing.T) {
	codec := newTestCodec(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RouteGuard(codec, testRoutes(), testCookieName))
	r.OPTIONS("/api/user/profile", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/user/profile", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestRouteGuard_StoresIdentity(t *testing.T) {
	codec := newTestCodec(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RouteGuard(codec, testRoutes(), testCookieName))

	var got *auth.Claims
	r.GET("/api/user/profile", func(c *gin.Context) {
		got = Identity(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, codec, 42, auth.RoleUser))
	r.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("expected identity in context")
	}
	if got.UserID != 42 || got.Role != auth.RoleUser {
		t.Fatalf("identity mismatch: %+v", got)
	}
}

func TestRequireRole_NoIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", RequireRole(auth.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireRole_Matrix(t *testing.T) {
	cases := []struct {
		name     string
		role     auth.Role
		required auth.Role
		want     int
	}{
		{"user on admin requirement", auth.RoleUser, auth.RoleAdmin, http.StatusForbidden},
		{"admin on admin requirement", auth.RoleAdmin, auth.RoleAdmin, http.StatusOK},
		{"user on user requirement", auth.RoleUser, auth.RoleUser, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.GET("/x",
				func(c *gin.Context) {
					c.Set(identityKey, &auth.Claims{UserID: 1, Role: tc.role})
				},
				RequireRole(tc.required),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestExtractIdentity(t *testing.T) {
	codec := newTestCodec(t)
	gin.SetMode(gin.TestMode)

	run := func(decorate func(*http.Request)) *auth.Claims {
		var got *auth.Claims
		r := gin.New()
		r.GET("/x", func(c *gin.Context) {
			got = ExtractIdentity(codec, c, testCookieName)
			c.Status(http.StatusOK)
		})
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		decorate(req)
		r.ServeHTTP(httptest.NewRecorder(), req)
		return got
	}

	tok := issue(t, codec, 9, auth.RoleUser)

	if got := run(func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+tok)
	}); got == nil || got.UserID != 9 {
		t.Fatalf("header extraction failed: %+v", got)
	}

	if got := run(func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: tok})
	}); got == nil || got.UserID != 9 {
		t.Fatalf("cookie extraction failed: %+v", got)
	}

	if got := run(func(req *http.Request) {}); got != nil {
		t.Fatalf("expected nil identity with no credential, got %+v", got)
	}

	if got := run(func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer garbage")
	}); got != nil {
		t.Fatalf("expected nil identity for invalid token, got %+v", got)
	}
}
