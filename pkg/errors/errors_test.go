package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeBusinessRule, http.StatusBadRequest},
		{CodeRateLimit, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
		{CodeDependency, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		meta := MetadataFor(tc.code)
		if meta.HTTPStatus != tc.status {
			t.Fatalf("code %s: expected status %d, got %d", tc.code, tc.status, meta.HTTPStatus)
		}
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(CodeDependency, cause, "store unavailable")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to satisfy errors.Is")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("expected dependency code, got %s", err.Code())
	}
}

func TestAsUnwrapsNestedTypedError(t *testing.T) {
	inner := New(CodeNotFound, "item not found")
	outer := fmt.Errorf("handler: %w", inner)

	typed := As(outer)
	if typed == nil {
		t.Fatal("expected typed error")
	}
	if typed.Code() != CodeNotFound {
		t.Fatalf("expected not found, got %s", typed.Code())
	}
}

func TestAsReturnsNilForPlainError(t *testing.T) {
	if As(stdErrors.New("plain")) != nil {
		t.Fatal("expected nil for untyped error")
	}
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "validation failed").WithDetails(map[string]string{"title": "is required"})
	details, ok := err.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected map details, got %T", err.Details())
	}
	if details["title"] != "is required" {
		t.Fatalf("unexpected details: %v", details)
	}
}
