package jwt

import (
	"errors"
	"testing"
	"time"
)

func testService(exp time.Duration) *Service {
	return NewService(Config{
		Secret:     []byte("test-secret-that-is-long-enough!"),
		Issuer:     "casaluna-api-test",
		Expiration: exp,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)

	token, err := svc.GenerateToken(42, "admin@casaluna.hotel", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "admin@casaluna.hotel" {
		t.Errorf("Email = %q, want admin@casaluna.hotel", claims.Email)
	}
	if !claims.IsAdmin() {
		t.Error("IsAdmin() = false, want true")
	}
	if claims.Issuer != "casaluna-api-test" {
		t.Errorf("Issuer = %q, want casaluna-api-test", claims.Issuer)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testService(-time.Minute)

	token, err := svc.GenerateToken(1, "worker@casaluna.hotel", "worker")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := testService(time.Hour)
	other := NewService(Config{
		Secret: []byte("a-completely-different-secret!!!"),
		Issuer: "casaluna-api-test",
	})

	token, err := svc.GenerateToken(1, "admin@casaluna.hotel", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = other.ValidateToken(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := testService(time.Hour)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.ValidateToken(input); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ValidateToken(%q) error = %v, want ErrInvalidToken", input, err)
		}
	}
}

func TestNonAdminClaims(t *testing.T) {
	svc := testService(time.Hour)

	token, err := svc.GenerateToken(7, "worker@casaluna.hotel", "worker")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.IsAdmin() {
		t.Error("IsAdmin() = true for worker role")
	}
}
