package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"

	coreerrors "ptt-app-api/core/errors"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error %v does not carry an HTTP status", err)
	}
	return se.GetStatus()
}

func TestToHumaError_Nil(t *testing.T) {
	if toHumaError(nil) != nil {
		t.Error("toHumaError(nil) should return nil")
	}
}

func TestToHumaError_Validation(t *testing.T) {
	err := toHumaError(&coreerrors.ValidationError{Field: "title", Message: "cannot be empty"})

	if statusOf(t, err) != http.StatusBadRequest {
		t.Errorf("Validation error status = %d, want %d", statusOf(t, err), http.StatusBadRequest)
	}
}

func TestToHumaError_Parse(t *testing.T) {
	err := toHumaError(&coreerrors.ParseError{Title: "x", Err: errors.New("boom")})

	if statusOf(t, err) != http.StatusInternalServerError {
		t.Errorf("Parse error status = %d, want %d", statusOf(t, err), http.StatusInternalServerError)
	}
}

func TestToHumaError_Unknown(t *testing.T) {
	err := toHumaError(errors.New("mystery"))

	if statusOf(t, err) != http.StatusInternalServerError {
		t.Errorf("Unknown error status = %d, want %d", statusOf(t, err), http.StatusInternalServerError)
	}
}
