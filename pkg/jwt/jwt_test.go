package jwt

import (
	"testing"
)

func TestLoginTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("admin@fitfolio.app", 7)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims["email"] != "admin@fitfolio.app" {
		t.Errorf("email claim = %v", claims["email"])
	}
	if uint(claims["user_id"].(float64)) != 7 {
		t.Errorf("user_id claim = %v", claims["user_id"])
	}
}

func TestResetTokenPurpose(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	loginToken, err := GenerateToken("admin@fitfolio.app", 7)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateResetToken(loginToken); err == nil {
		t.Fatal("login token must not pass reset validation")
	}

	resetToken, err := GenerateResetToken("admin@fitfolio.app", 7)
	if err != nil {
		t.Fatalf("GenerateResetToken: %v", err)
	}
	claims, err := ValidateResetToken(resetToken)
	if err != nil {
		t.Fatalf("ValidateResetToken: %v", err)
	}
	if claims["purpose"] != "password_reset" {
		t.Errorf("purpose claim = %v", claims["purpose"])
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("admin@fitfolio.app", 7)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("token signed with a different secret must be rejected")
	}
}
