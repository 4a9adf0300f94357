package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestWrapAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := Wrap(cause, ErrCodeWrite, "failed to write output")

	if err.Unwrap() != cause {
		t.Fatalf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
	if !HasCode(err, ErrCodeWrite) {
		t.Fatal("expected WRITE_ERROR code")
	}
	if HasCode(err, ErrCodeLoad) {
		t.Fatal("did not expect LOAD_ERROR code")
	}
	if err.Category != CategoryStorage {
		t.Fatalf("category = %s, want %s", err.Category, CategoryStorage)
	}
}

func TestHasCodeThroughWrapping(t *testing.T) {
	inner := NotFoundError("template \"x\"")
	outer := fmt.Errorf("loading library: %w", inner)

	if !HasCode(outer, ErrCodeNotFound) {
		t.Fatal("HasCode should see through fmt.Errorf wrapping")
	}
	if !IsAppError(outer) {
		t.Fatal("IsAppError should see through fmt.Errorf wrapping")
	}
}

func TestGetAppErrorConvertsPlainErrors(t *testing.T) {
	plain := fmt.Errorf("something odd")
	appErr := GetAppError(plain)
	if appErr.Code != ErrCodeInternal {
		t.Fatalf("code = %s, want %s", appErr.Code, ErrCodeInternal)
	}
}

func TestCLIErrorHandlerFormat(t *testing.T) {
	handler := NewCLIErrorHandler(false)
	msg := handler.FormatError(NotFoundError("template \"sample\""))

	if !strings.Contains(msg, "not found") {
		t.Fatalf("message missing error text: %q", msg)
	}
	if !strings.Contains(msg, "rulebook list") {
		t.Fatalf("message missing suggestion: %q", msg)
	}

	verbose := NewCLIErrorHandler(true)
	wrapped := Wrap(fmt.Errorf("root cause"), ErrCodeRender, "render for cursor failed")
	msg = verbose.FormatError(wrapped)
	if !strings.Contains(msg, "root cause") {
		t.Fatalf("verbose message missing cause: %q", msg)
	}
}
