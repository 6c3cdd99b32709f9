package error

import (
	"errors"
	"net/http"
	"testing"
)

func TestConstructorsCarryHttpAndErrorCodes(t *testing.T) {
	cases := []struct {
		name      string
		err       *Error
		httpCode  int
		errorCode int
	}{
		{"attendance conflict", AttendanceAlreadyMarked("dup"), http.StatusConflict, ATTENDANCE_ALREADY_MARKED},
		{"identity exists", IdentityExists("dup"), http.StatusConflict, IDENTITY_EXISTS},
		{"weak credential", WeakCredential("weak"), http.StatusBadRequest, WEAK_CREDENTIAL},
		{"identity bridge", IdentityBridgeError("down"), http.StatusBadGateway, IDENTITY_BRIDGE_ERROR},
		{"upload", UploadError("down"), http.StatusBadGateway, UPLOAD_ERROR},
		{"rate limit", RateLimitExceeded("slow down"), http.StatusTooManyRequests, RATE_LIMIT_EXCEEDED},
		{"limiter outage", FormLimiterUnavailable("redis down"), http.StatusServiceUnavailable, SERVICE_UNAVAILABLE},
		{"not found", NotFound("missing"), http.StatusNotFound, NOT_FOUND},
		{"database", DatabaseError("mongo"), http.StatusInternalServerError, DATABASE_ERROR},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.HttpCode() != tc.httpCode {
				t.Fatalf("http code: want %d got %d", tc.httpCode, tc.err.HttpCode())
			}
			if tc.err.ErrorCode() != tc.errorCode {
				t.Fatalf("error code: want %d got %d", tc.errorCode, tc.err.ErrorCode())
			}
		})
	}
}

func TestValidationFailedExposesFieldErrors(t *testing.T) {
	err := ValidationFailed("validation failed", map[string][]string{
		"email": {"email format is invalid"},
	})
	fields := err.FieldErrors()
	if len(fields["email"]) != 1 || fields["email"][0] != "email format is invalid" {
		t.Fatalf("unexpected field errors: %v", fields)
	}
	if err.ErrorCode() != VALIDATION_FAILED {
		t.Fatalf("unexpected error code: %d", err.ErrorCode())
	}
}

func TestFromPassesThroughAppErrors(t *testing.T) {
	original := NotFound("missing")
	if From(original) != original {
		t.Fatalf("expected the same *Error back")
	}
	wrapped := From(errors.New("plain failure"))
	if wrapped.ErrorCode() != INTERNAL_ERROR {
		t.Fatalf("plain errors must map to INTERNAL_ERROR, got %d", wrapped.ErrorCode())
	}
}
