package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamo down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	body := e.ToHTTPError()
	if body["success"] != false || body["error"] != "An internal error occurred" || body["code"] != "INTERNAL_ERROR" {
		t.Fatalf("unexpected body %+v", body)
	}
	if _, ok := body["details"]; ok {
		t.Fatalf("details must be omitted when empty")
	}

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).WithDetails([]string{"x"})
	if simple.ToHTTPError()["details"] == nil {
		t.Fatalf("expected details")
	}
	if simple.Error() != "INVALID_REQUEST: Invalid request" {
		t.Fatalf("unexpected message %q", simple.Error())
	}
}
