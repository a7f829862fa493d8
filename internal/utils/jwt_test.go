package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "user-123", time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != "user-123" {
		t.Errorf("expected userID 'user-123', got %s", token.UserID)
	}
	if time.Until(token.ExpiresAt) <= 0 {
		t.Error("expected expiry in the future")
	}

	// payload carries {"user":{"id":...}}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token.SignedString, claims); err != nil {
		t.Fatalf("could not parse token: %v", err)
	}
	user, ok := claims["user"].(map[string]any)
	if !ok {
		t.Fatal("expected user object in payload")
	}
	if user["id"] != "user-123" {
		t.Errorf("expected user.id 'user-123', got %v", user["id"])
	}
	if claims["iss"] != "test-issuer" {
		t.Errorf("expected issuer 'test-issuer', got %v", claims["iss"])
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty user", "", time.Hour, "key"},
		{"zero duration", "u", 0, "key"},
		{"negative duration", "u", -time.Second, "key"},
		{"empty key", "u", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken("iss", tt.userID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "user-456", 5*time.Minute, "secret-key")

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.UserID != "user-456" {
		t.Errorf("expected userID user-456, got %s", parsed.UserID)
	}
	if parsed.ExpiresAt.IsZero() {
		t.Error("expected expiry to be set")
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, _ := GenerateJWTToken("issuer", "user-1", time.Hour, "key")
	expired := signClaims(t, jwt.MapClaims{
		"user": map[string]any{"id": "user-1"},
		"iss":  "issuer",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	}, jwt.SigningMethodHS256, "key")
	noExpiry := signClaims(t, jwt.MapClaims{
		"user": map[string]any{"id": "user-1"},
		"iss":  "issuer",
	}, jwt.SigningMethodHS256, "key")
	noUser := signClaims(t, jwt.MapClaims{
		"iss": "issuer",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256, "key")
	otherAlg := signClaims(t, jwt.MapClaims{
		"user": map[string]any{"id": "user-1"},
		"iss":  "issuer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS512, "key")

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", "issuer"},
		{"wrong issuer", valid.SignedString, "key", "other-issuer"},
		{"tampered signature", tamperSignature(t, valid.SignedString), "key", "issuer"},
		{"non-canonical signature", reencodeLastChar(valid.SignedString), "key", "issuer"},
		{"expired", expired, "key", "issuer"},
		{"missing expiry", noExpiry, "key", "issuer"},
		{"missing user", noUser, "key", "issuer"},
		{"unexpected algorithm", otherAlg, "key", "issuer"},
		{"garbage", "not.a.token", "key", "issuer"},
		{"empty", "", "key", "issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RejectsAnyAlteredSignature(t *testing.T) {
	for i := range 200 {
		token, err := GenerateJWTToken("issuer", fmt.Sprintf("user-%d", i), time.Hour, "key")
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}

		if _, err := ValidateAndParseJWTToken(tamperSignature(t, token.SignedString), "key", "issuer"); err == nil {
			t.Fatalf("token %d: tampered signature accepted", i)
		}
		if _, err := ValidateAndParseJWTToken(reencodeLastChar(token.SignedString), "key", "issuer"); err == nil {
			t.Fatalf("token %d: non-canonical signature accepted", i)
		}
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer abc  ", "abc", false},
		{"missing token", "Bearer", "", true},
		{"other scheme", "Basic abc", "", true},
		{"empty", "", "", true},
		{"too many parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func signClaims(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}
	return s
}

// tamperSignature flips one bit of the decoded signature and re-encodes it,
// so the result is a well-formed token with a wrong signature.
func tamperSignature(t *testing.T, token string) string {
	t.Helper()
	dot := strings.LastIndex(token, ".")
	sig, err := base64.RawURLEncoding.DecodeString(token[dot+1:])
	if err != nil {
		t.Fatalf("decoding signature: %v", err)
	}
	sig[len(sig)/2] ^= 0x01
	return token[:dot+1] + base64.RawURLEncoding.EncodeToString(sig)
}

// reencodeLastChar sets the unused padding bits of the final signature
// character. The decoded bytes stay the same.
func reencodeLastChar(token string) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	last := strings.IndexByte(alphabet, token[len(token)-1])
	return token[:len(token)-1] + string(alphabet[last^0x01])
}
