package auth

import (
	"testing"
	"time"
)

func TestGenerateToken(t *testing.T) {
	secret := "test-secret"
	subject := "S2023001"
	role := RoleMember
	ttl := 24 * time.Hour

	token, jti, err := GenerateToken(secret, subject, role, ttl)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if token == "" {
		t.Error("Expected token to be generated")
	}
	if jti == "" {
		t.Error("Expected JTI to be generated")
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("Expected no error parsing token, got %v", err)
	}
	if claims.ID != jti {
		t.Errorf("Expected JTI %s, got %s", jti, claims.ID)
	}
	if claims.Sub != subject {
		t.Errorf("Expected subject %s, got %s", subject, claims.Sub)
	}
	if claims.Role != role {
		t.Errorf("Expected role %s, got %s", role, claims.Role)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken("secret-a", "S2023001", RoleMember, time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := ParseToken("secret-b", token); err == nil {
		t.Error("Expected error for token signed with different secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, _, err := GenerateToken("secret", "S2023001", RoleMember, -time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := ParseToken("secret", token); err == nil {
		t.Error("Expected error for expired token")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("secret", "not.a.token"); err == nil {
		t.Error("Expected error for malformed token")
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !VerifyPassword(hash, "123456") {
		t.Error("Expected matching password to verify")
	}
	if VerifyPassword(hash, "654321") {
		t.Error("Expected non-matching password to fail")
	}
}
