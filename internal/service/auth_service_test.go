package service

import (
	"context"
	"strings"
	"testing"

	"github.com/spec-kit/helpdesk-api/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-api/pkg/util"
)

func newTestAuthService(t *testing.T) (*AuthService, *memUserRepo) {
	t.Helper()
	repo := newMemUserRepo()
	svc, err := NewAuthService(testConfig(), repo)
	if err != nil {
		t.Fatalf("failed to build auth service: %v", err)
	}
	return svc, repo
}

func TestRegisterDefaults(t *testing.T) {
	svc, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), "a@x.com", "Aion__2025", nil)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("expected role user, got %q", user.Role)
	}
	if !user.IsActive {
		t.Error("expected new account to be active")
	}
	if user.ID == 0 {
		t.Error("expected assigned id")
	}
	if user.HashedPassword == "Aion__2025" {
		t.Error("password must be stored hashed")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@x.com", "Aion__2025", nil); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(ctx, "a@x.com", "Other__2025", nil)
	if err == nil {
		t.Fatal("expected duplicate email to fail")
	}
	if code := apperrors.ToDomainError(err).Code; code != "DUPLICATE_EMAIL" {
		t.Errorf("expected DUPLICATE_EMAIL, got %s", code)
	}
}

func TestRegisterRejectsLongPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)

	_, err := svc.Register(context.Background(), "a@x.com", strings.Repeat("a", 73), nil)
	if err == nil {
		t.Fatal("expected over-long password to fail")
	}
	if code := apperrors.ToDomainError(err).Code; code != "VALIDATION_FAILED" {
		t.Errorf("expected VALIDATION_FAILED, got %s", code)
	}
	if len(repo.users) != 0 {
		t.Error("expected no user row for rejected registration")
	}
}

func TestLoginIssuesTokenWithCurrentRole(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@x.com", "Aion__2025", nil); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	repo.users["a@x.com"].Role = domain.RoleAgent

	user, token, exp, err := svc.Login(ctx, "a@x.com", "Aion__2025")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Errorf("unexpected user %q", user.Email)
	}
	if exp.IsZero() {
		t.Error("expected expiry to be set")
	}

	claims, err := svc.TokenManager().Parse(token)
	if err != nil {
		t.Fatalf("issued token failed to parse: %v", err)
	}
	if claims.Subject != "a@x.com" {
		t.Errorf("expected subject a@x.com, got %q", claims.Subject)
	}
	if claims.Role != domain.RoleAgent {
		t.Errorf("expected role agent in claims, got %q", claims.Role)
	}
}

func TestLoginCollapsesFailureModes(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@x.com", "Aion__2025", nil); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, _, wrongPass := svc.Login(ctx, "a@x.com", "wrong-password")
	_, _, _, unknownEmail := svc.Login(ctx, "ghost@x.com", "Aion__2025")

	if wrongPass == nil || unknownEmail == nil {
		t.Fatal("expected both login attempts to fail")
	}

	// identical errors prevent account enumeration
	wrongErr := apperrors.ToDomainError(wrongPass)
	unknownErr := apperrors.ToDomainError(unknownEmail)
	if wrongErr.Code != "INVALID_CREDENTIALS" || unknownErr.Code != "INVALID_CREDENTIALS" {
		t.Errorf("expected INVALID_CREDENTIALS for both, got %s and %s", wrongErr.Code, unknownErr.Code)
	}
	if wrongErr.Message != unknownErr.Message || wrongErr.HTTPStatus != unknownErr.HTTPStatus {
		t.Error("expected identical error shapes for wrong password and unknown email")
	}
}
