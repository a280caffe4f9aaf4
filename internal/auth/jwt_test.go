package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "test-secret-at-least-32-chars-long-for-security"

func TestJWTManager_GenerateAndValidate_Success(t *testing.T) {
	manager := NewJWTManager(testSecret, "algotrack-test", 15*time.Minute)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	validatedID, role, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if validatedID != userID {
		t.Errorf("expected userID %s, got %s", userID, validatedID)
	}
	if role != "user" {
		t.Errorf("expected role 'user', got %q", role)
	}
}

func TestJWTManager_GenerateAndValidate_AdminRole(t *testing.T) {
	manager := NewJWTManager(testSecret, "algotrack-test", 15*time.Minute)

	token, err := manager.GenerateAccessToken(uuid.New(), "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, role, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if role != "admin" {
		t.Errorf("expected role 'admin', got %q", role)
	}
}

func TestJWTManager_ValidateAccessToken_Expired(t *testing.T) {
	// Negative TTL produces an already-expired token.
	manager := NewJWTManager(testSecret, "algotrack-test", -1*time.Hour)

	token, err := manager.GenerateAccessToken(uuid.New(), "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, _, err = manager.ValidateAccessToken(token)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !strings.Contains(err.Error(), "expired") && !strings.Contains(err.Error(), "parse token") {
		t.Errorf("expected expiry-related error, got: %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_InvalidSignature(t *testing.T) {
	manager1 := NewJWTManager(testSecret, "algotrack-test", 15*time.Minute)
	manager2 := NewJWTManager("different-secret-32-chars-long-for-security!!", "algotrack-test", 15*time.Minute)

	token, err := manager1.GenerateAccessToken(uuid.New(), "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, _, err = manager2.ValidateAccessToken(token)
	if err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestJWTManager_ValidateAccessToken_Malformed(t *testing.T) {
	manager := NewJWTManager(testSecret, "algotrack-test", 15*time.Minute)

	malformedTokens := []string{
		"not.a.jwt",
		"invalid-token",
		"header.payload",
	}

	for _, token := range malformedTokens {
		_, _, err := manager.ValidateAccessToken(token)
		if err == nil {
			t.Errorf("expected error for malformed token %q, got nil", token)
		}
	}
}

func TestJWTManager_ValidateAccessToken_WrongIssuer(t *testing.T) {
	manager1 := NewJWTManager(testSecret, "algotrack-test", 15*time.Minute)
	manager2 := NewJWTManager(testSecret, "wrong-issuer", 15*time.Minute)

	token, err := manager1.GenerateAccessToken(uuid.New(), "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, _, err = manager2.ValidateAccessToken(token)
	if err == nil {
		t.Fatal("expected error for wrong issuer, got nil")
	}
	if !strings.Contains(err.Error(), "invalid issuer") {
		t.Errorf("expected 'invalid issuer' error, got: %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_EmptyString(t *testing.T) {
	manager := NewJWTManager(testSecret, "algotrack-test", 15*time.Minute)

	_, _, err := manager.ValidateAccessToken("")
	if err == nil {
		t.Fatal("expected error for empty token, got nil")
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected 'empty' error, got: %v", err)
	}
}
