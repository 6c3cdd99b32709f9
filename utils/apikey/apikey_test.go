package apikey

import (
	"strings"
	"testing"
)

func TestGenerateAndVerifyAdminKey(t *testing.T) {
	key, err := GenerateAdminKey("ops-admin", "test-secret")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	payload, err := ParseAndVerifyAdminKey(key, "test-secret")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if payload.AdminID != "ops-admin" {
		t.Fatalf("unexpected adminID: %q", payload.AdminID)
	}
	if payload.IssuedAt == 0 {
		t.Fatalf("issuedAt must be set")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	key, err := GenerateAdminKey("ops-admin", "test-secret")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseAndVerifyAdminKey(key, "other-secret"); err == nil {
		t.Fatalf("expected signature mismatch")
	}
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	key, err := GenerateAdminKey("ops-admin", "test-secret")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	parts := strings.Split(key, ".")
	tampered := parts[0] + "x." + parts[1]
	if _, err := ParseAndVerifyAdminKey(tampered, "test-secret"); err == nil {
		t.Fatalf("expected tampered key to fail")
	}
}

func TestVerifyRejectsMalformedKey(t *testing.T) {
	if _, err := ParseAndVerifyAdminKey("not-a-key", "test-secret"); err == nil {
		t.Fatalf("expected format error")
	}
	if _, err := ParseAndVerifyAdminKey("a.b.c", "test-secret"); err == nil {
		t.Fatalf("expected format error")
	}
}
