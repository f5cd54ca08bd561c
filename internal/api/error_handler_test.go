package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/peopleops/onboarding-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/v1/applicants/app_1/accept", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_TypedErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation", &domain.ValidationError{Field: "reason", Reason: "must not be empty"}, http.StatusBadRequest},
		{"conflict", &domain.ConflictError{Transition: domain.TransitionAccept, State: domain.StateOnboarded}, http.StatusConflict},
		{"not found", &domain.NotFoundError{Entity: "applicant", Key: "app_1"}, http.StatusNotFound},
		{"provisioning", &domain.ProvisioningError{ApplicantID: "app_1", Err: errors.New("directory down")}, http.StatusBadGateway},
	}

	for _, tc := range cases {
		code, msg := renderError(t, tc.err)
		if code != tc.wantCode {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.wantCode, code)
		}
		if msg == "" {
			t.Errorf("%s: error message must not be empty", tc.name)
		}
	}
}

func TestHTTPErrorHandler_ProvisioningErrorHidesCause(t *testing.T) {
	_, msg := renderError(t, &domain.ProvisioningError{ApplicantID: "app_1", Err: errors.New("ldap bind: secret123")})
	if msg != "employee provisioning failed" {
		t.Errorf("provisioning cause must not leak to the client, got %q", msg)
	}
}

func TestHTTPErrorHandler_Sentinels(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
	}{
		{domain.ErrApplicantNotFound, http.StatusNotFound},
		{domain.ErrRecordNotFound, http.StatusNotFound},
		{domain.ErrEmployeeNotFound, http.StatusNotFound},
		{domain.ErrApplicantExists, http.StatusConflict},
		{domain.ErrVersionConflict, http.StatusConflict},
		{domain.ErrLockNotAcquired, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
	}

	for _, tc := range cases {
		code, _ := renderError(t, tc.err)
		if code != tc.wantCode {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.wantCode, code)
		}
	}
}

func TestHTTPErrorHandler_WrappedSentinel(t *testing.T) {
	wrapped := errors.Join(errors.New("loading applicant"), domain.ErrApplicantNotFound)
	code, _ := renderError(t, wrapped)
	if code != http.StatusNotFound {
		t.Errorf("wrapped sentinel must still map to 404, got %d", code)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnprocessableEntity, "step is required"))
	if code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", code)
	}
	if msg != "step is required" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Errorf("internal cause must not leak, got %q", msg)
	}
}
