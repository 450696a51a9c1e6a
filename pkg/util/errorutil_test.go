package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewValidationError("bad input", map[string]any{"field": "name"})
	mapped := ToDomainError(original)
	if mapped.Code != "VALIDATION_FAILED" || mapped.HTTPStatus != http.StatusBadRequest {
		t.Errorf("unexpected mapping %+v", mapped)
	}
}

func TestToDomainErrorUnwrapsWrapped(t *testing.T) {
	wrapped := fmt.Errorf("update item: %w", NewNotFound("item", nil))
	mapped := ToDomainError(wrapped)
	if mapped.Code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND through wrapping, got %s", mapped.Code)
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected NOT_FOUND for pgx.ErrNoRows, got %+v", mapped)
	}
}

func TestToDomainErrorDefaultsToInternal(t *testing.T) {
	mapped := ToDomainError(errors.New("connection reset"))
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected INTERNAL_ERROR fallback, got %+v", mapped)
	}
	if mapped.Message == "connection reset" {
		t.Error("internal details must not leak into the message")
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Error("nil error must map to nil")
	}
}

func TestErrorKindsCarryExpectedStatus(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{NewUnauthorized("no token"), "UNAUTHORIZED", http.StatusUnauthorized},
		{NewInactiveAccount(), "ACCOUNT_INACTIVE", http.StatusBadRequest},
		{NewForbidden("nope"), "FORBIDDEN", http.StatusForbidden},
		{NewInvalidCredentials(), "INVALID_CREDENTIALS", http.StatusUnauthorized},
		{NewDuplicateEmail("a@x.com"), "DUPLICATE_EMAIL", http.StatusConflict},
		{NewConfigurationError("seed missing"), "CONFIGURATION_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		mapped := ToDomainError(tc.err)
		if mapped.Code != tc.code || mapped.HTTPStatus != tc.status {
			t.Errorf("expected %s/%d, got %s/%d", tc.code, tc.status, mapped.Code, mapped.HTTPStatus)
		}
	}
}
