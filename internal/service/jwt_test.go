package service

import (
	"strings"
	"testing"
	"time"

	"github.com/Diatessaron/Best-Course-Ever/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testSecret = "this-is-a-test-secret-with-32-bytes!"
	testExpiry = 168 * time.Hour
)

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewTokenService(t *testing.T) {
	svc := NewTokenService(testSecret, testExpiry)
	if svc == nil {
		t.Fatal("NewTokenService returned nil")
	}

	if got := svc.Expiry(); got != testExpiry {
		t.Errorf("Expiry() = %v, want %v", got, testExpiry)
	}
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	if svc := NewTokenService("", testExpiry); svc != nil {
		t.Error("NewTokenService() should return nil for empty secret")
	}
}

func TestNewTokenService_ShortSecret(t *testing.T) {
	if svc := NewTokenService("short", testExpiry); svc != nil {
		t.Error("NewTokenService() should return nil for secret less than 32 bytes")
	}
}

// =============================================================================
// Issue / Verify Tests
// =============================================================================

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, testExpiry)

	tests := []struct {
		name   string
		userID string
		email  string
		roles  []models.Role
	}{
		{
			name:   "single role",
			userID: "9f9c54aa-5f0e-4a6c-9c3f-0c2b1d1a7e42",
			email:  "a@b.com",
			roles:  []models.Role{models.RoleUser},
		},
		{
			name:   "multiple roles",
			userID: "11e4c1e3-56a9-4f8c-9a56-1c3f7f9f0001",
			email:  "author@example.com",
			roles:  []models.Role{models.RoleUser, models.RoleAuthor, models.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Issue(tt.userID, tt.email, tt.roles)
			if err != nil {
				t.Fatalf("Issue() error = %v", err)
			}
			if token == "" {
				t.Fatal("Issue() returned empty token")
			}

			claims, err := svc.Verify(token)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if claims.UserID != tt.userID {
				t.Errorf("Claims.UserID = %v, want %v", claims.UserID, tt.userID)
			}
			if claims.Email != tt.email {
				t.Errorf("Claims.Email = %v, want %v", claims.Email, tt.email)
			}
			if len(claims.Roles) != len(tt.roles) {
				t.Fatalf("Claims.Roles = %v, want %v", claims.Roles, tt.roles)
			}
			for i, role := range tt.roles {
				if claims.Roles[i] != role {
					t.Errorf("Claims.Roles[%d] = %v, want %v", i, claims.Roles[i], role)
				}
			}
			if claims.ExpiresAt == nil || claims.IssuedAt == nil {
				t.Fatal("Claims missing timestamps")
			}
			gotTTL := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
			if gotTTL != testExpiry {
				t.Errorf("token lifetime = %v, want %v", gotTTL, testExpiry)
			}
		})
	}
}

func TestVerify_Expired(t *testing.T) {
	svc := NewTokenService(testSecret, -time.Hour)

	token, err := svc.Issue("user-1", "a@b.com", []models.Role{models.RoleUser})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Error("Verify() should reject expired token")
	}
}

func TestVerify_Tampered(t *testing.T) {
	svc := NewTokenService(testSecret, testExpiry)

	token, err := svc.Issue("user-1", "a@b.com", []models.Role{models.RoleUser})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token structure: %d parts", len(parts))
	}

	tests := []struct {
		name  string
		token string
	}{
		{"flipped payload", parts[0] + ".eyJ0YW1wZXJlZCI6dHJ1ZX0." + parts[2]},
		{"truncated signature", parts[0] + "." + parts[1] + "." + parts[2][:len(parts[2])-4]},
		{"garbage", "not.a.token"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Verify(tt.token); err == nil {
				t.Error("Verify() should reject tampered token")
			}
		})
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	svc := NewTokenService(testSecret, testExpiry)
	other := NewTokenService("another-secret-that-is-32-bytes!!!!!", testExpiry)

	token, err := other.Issue("user-1", "a@b.com", []models.Role{models.RoleUser})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Error("Verify() should reject token signed with a different secret")
	}
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	svc := NewTokenService(testSecret, testExpiry)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: "user-1",
		Email:  "a@b.com",
		Roles:  []models.Role{models.RoleAdmin},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Error("Verify() should reject token with alg=none")
	}
}

// =============================================================================
// Decode Tests
// =============================================================================

func TestDecode_ExpiredToken(t *testing.T) {
	svc := NewTokenService(testSecret, -time.Hour)

	token, err := svc.Issue("user-1", "a@b.com", []models.Role{models.RoleUser})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Decode must still read claims from a token Verify would reject.
	claims, err := svc.Decode(token)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("Claims.UserID = %v, want user-1", claims.UserID)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Before(time.Now()) {
		t.Error("decoded expiry should be in the past")
	}
}

func TestDecode_Malformed(t *testing.T) {
	svc := NewTokenService(testSecret, testExpiry)

	if _, err := svc.Decode("not-a-token"); err == nil {
		t.Error("Decode() should fail on malformed input")
	}
}
