package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-api/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-api/pkg/util"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func setupGateApp(t *testing.T) (*fiber.App, *fakeUserRepo, *TokenManager) {
	t.Helper()

	repo := &fakeUserRepo{users: map[string]*domain.User{}}
	tm := newTestTokenManager(t)
	middleware := NewMiddleware(tm, repo)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": fiber.Map{"code": domainErr.Code}})
		},
	})
	app.Get("/me", middleware.Handle, RequireActive(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Patch("/restricted", middleware.Handle, RequireActive(), RequireRole(domain.RoleAdmin, domain.RoleAgent),
		func(c *fiber.Ctx) error {
			return c.SendStatus(http.StatusOK)
		})

	return app, repo, tm
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestGateMissingHeader(t *testing.T) {
	app, _, _ := setupGateApp(t)
	if code := doRequest(t, app, "GET", "/me", ""); code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", code)
	}
}

func TestGateInvalidToken(t *testing.T) {
	app, _, _ := setupGateApp(t)
	if code := doRequest(t, app, "GET", "/me", "not-a-token"); code != http.StatusUnauthorized {
		t.Errorf("expected 401 for garbage token, got %d", code)
	}
}

func TestGateUnknownSubject(t *testing.T) {
	app, _, tm := setupGateApp(t)
	token, _, err := tm.Generate("ghost@x.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	// valid token for a deleted user looks identical to an invalid token
	if code := doRequest(t, app, "GET", "/me", token); code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown subject, got %d", code)
	}
}

func TestGateInactiveAccount(t *testing.T) {
	app, repo, tm := setupGateApp(t)
	repo.users["a@x.com"] = &domain.User{ID: 1, Email: "a@x.com", Role: domain.RoleUser, IsActive: false}

	token, _, err := tm.Generate("a@x.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if code := doRequest(t, app, "GET", "/me", token); code != http.StatusBadRequest {
		t.Errorf("expected 400 for inactive account, got %d", code)
	}
}

func TestGateRoleCheckUsesStoredRole(t *testing.T) {
	app, repo, tm := setupGateApp(t)
	repo.users["a@x.com"] = &domain.User{ID: 1, Email: "a@x.com", Role: domain.RoleUser, IsActive: true}

	// token claims admin but the stored row says user; the gate must forbid
	token, _, err := tm.Generate("a@x.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if code := doRequest(t, app, "PATCH", "/restricted", token); code != http.StatusForbidden {
		t.Errorf("expected 403 for user role, got %d", code)
	}

	// promoting the stored role grants access without reissuing the token
	repo.users["a@x.com"].Role = domain.RoleAgent
	if code := doRequest(t, app, "PATCH", "/restricted", token); code != http.StatusOK {
		t.Errorf("expected 200 for agent role, got %d", code)
	}
}

func TestGateAllowsActiveUser(t *testing.T) {
	app, repo, tm := setupGateApp(t)
	repo.users["a@x.com"] = &domain.User{ID: 1, Email: "a@x.com", Role: domain.RoleUser, IsActive: true}

	token, _, err := tm.Generate("a@x.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if code := doRequest(t, app, "GET", "/me", token); code != http.StatusOK {
		t.Errorf("expected 200 for active user, got %d", code)
	}
}
