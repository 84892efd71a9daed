package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
)

// TestCreateAccessToken_RoundTrip verifies the token parses with the same
// secret and carries the subject claim.
func TestCreateAccessToken_RoundTrip(t *testing.T) {
	tok, err := CreateAccessToken("test-secret", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("token did not parse: %v", err)
	}
	if claims["sub"] != "admin" {
		t.Errorf("expected sub=admin, got %v", claims["sub"])
	}
	if _, ok := claims["exp"].(float64); !ok {
		t.Error("token missing exp claim")
	}
}

// TestCreateAccessToken_WrongSecret verifies a tampered secret fails parsing.
func TestCreateAccessToken_WrongSecret(t *testing.T) {
	tok, err := CreateAccessToken("secret-a", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = jwt.Parse(tok, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	if err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}

// TestPasswordHash_VerifyAndReject covers bcrypt round trip.
func TestPasswordHash_VerifyAndReject(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := CheckPasswordHash(hash, "s3cret!"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := CheckPasswordHash(hash, "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
}
