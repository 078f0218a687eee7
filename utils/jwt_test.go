package utils

import (
	"strings"
	"testing"
	"time"

	"meetcure/models"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("doc-1", "doc@example.com", models.RoleDoctor, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	id, role, err := ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims: %v", err)
	}
	if id != "doc-1" {
		t.Errorf("id = %q, want doc-1", id)
	}
	if role != models.RoleDoctor {
		t.Errorf("role = %q, want doctor", role)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("pat-1", "pat@example.com", models.RolePatient, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, _, err := ExtractClaims(tampered); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("pat-1", "pat@example.com", models.RolePatient, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, _, err := ExtractClaims(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Errorf("hash not stable: %q vs %q", a, b)
	}
	if HashToken("other-token") == a {
		t.Error("distinct tokens produced the same hash")
	}
}
