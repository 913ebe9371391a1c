package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/camburiu/acessoria-api/internal/api"
	"github.com/camburiu/acessoria-api/internal/api/middleware"
	"github.com/camburiu/acessoria-api/internal/core/domain"
	"github.com/camburiu/acessoria-api/internal/core/service"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindAll(ctx context.Context) ([]domain.User, error)    { return nil, nil }
func (s *stubUserRepo) FindAdmins(ctx context.Context) ([]domain.User, error) { return nil, nil }

func (s *stubUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (s *stubUserRepo) UpdatePassword(ctx context.Context, id int64, hash string) error { return nil }
func (s *stubUserRepo) Delete(ctx context.Context, id int64) error                      { return nil }
func (s *stubUserRepo) Count(ctx context.Context) (int64, error)                        { return int64(len(s.users)), nil }

func newAuthFixture(t *testing.T) (*echo.Echo, *service.TokenCodec, *stubUserRepo) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	codec := service.NewTokenCodec("test-secret", time.Hour)
	repo := &stubUserRepo{users: map[string]*domain.User{
		"ana@camburiu.com.br": {ID: 1, Name: "Ana", Email: "ana@camburiu.com.br", Status: domain.StatusAdmin},
	}}
	return e, codec, repo
}

func runMiddleware(e *echo.Echo, mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, *domain.User, bool) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	var seen *domain.User
	handler := mw(func(c echo.Context) error {
		called = true
		seen, _ = c.Get(middleware.CurrentUserKey).(*domain.User)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, seen, called
}

func TestAuth_ValidToken(t *testing.T) {
	e, codec, repo := newAuthFixture(t)
	token, err := codec.Issue("ana@camburiu.com.br")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec, user, called := runMiddleware(e, middleware.Auth(codec, repo), req)
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if user == nil || user.Email != "ana@camburiu.com.br" {
		t.Fatalf("current user not attached: %+v", user)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e, codec, repo := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	rec, _, called := runMiddleware(e, middleware.Auth(codec, repo), req)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	e, codec, repo := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	req.Header.Set("Authorization", "Token abc")
	rec, _, called := runMiddleware(e, middleware.Auth(codec, repo), req)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	e, _, repo := newAuthFixture(t)
	expired := service.NewTokenCodec("test-secret", -time.Hour)
	token, err := expired.Issue("ana@camburiu.com.br")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	codec := service.NewTokenCodec("test-secret", time.Hour)
	rec, _, called := runMiddleware(e, middleware.Auth(codec, repo), req)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"error":"TOKEN_EXPIRADO"}`+"\n" {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestAuth_WrongSignature(t *testing.T) {
	e, codec, repo := newAuthFixture(t)
	other := service.NewTokenCodec("another-secret", time.Hour)
	token, err := other.Issue("ana@camburiu.com.br")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec, _, called := runMiddleware(e, middleware.Auth(codec, repo), req)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_UnknownSubject(t *testing.T) {
	e, codec, repo := newAuthFixture(t)
	token, err := codec.Issue("ghost@camburiu.com.br")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec, _, called := runMiddleware(e, middleware.Auth(codec, repo), req)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"error":"USUARIO_NAO_ENCONTRADO"}`+"\n" {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestOptionalAuth_NoHeaderPassesThrough(t *testing.T) {
	e, codec, repo := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/usuarios", nil)
	rec, user, called := runMiddleware(e, middleware.OptionalAuth(codec, repo), req)
	if !called {
		t.Fatalf("next not called for anonymous request")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if user != nil {
		t.Fatalf("expected no current user, got %+v", user)
	}
}

func TestOptionalAuth_BrokenHeaderRejected(t *testing.T) {
	e, codec, repo := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/usuarios", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec, _, called := runMiddleware(e, middleware.OptionalAuth(codec, repo), req)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestOptionalAuth_ValidTokenAttachesUser(t *testing.T) {
	e, codec, repo := newAuthFixture(t)
	token, err := codec.Issue("ana@camburiu.com.br")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/usuarios", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	_, user, called := runMiddleware(e, middleware.OptionalAuth(codec, repo), req)
	if !called {
		t.Fatalf("next not called")
	}
	if user == nil || user.ID != 1 {
		t.Fatalf("current user not attached: %+v", user)
	}
}
