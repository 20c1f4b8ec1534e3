package validation

import (
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid with symbol", "Abc12345!", false},
		{"valid with question mark", "Abc12345?", false},
		{"valid with hyphen", "Abc12345-", false},
		{"too short", "Ab1!", true},
		{"too long", "A1!" + strings.Repeat("a", 126), true},
		{"no uppercase", "abc12345!", true},
		{"no lowercase", "ABC12345!", true},
		{"no digit", "Abcdefgh!", true},
		{"no symbol", "Abc12345", true},
		{"symbol outside accepted set", "Abc12345§", true},
		{"exactly eight chars", "Abc1234!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid", "grace_hopper", false},
		{"valid with digits", "user42", false},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 31), true},
		{"invalid characters", "user name", true},
		{"leading underscore", "_user", true},
		{"trailing hyphen", "user-", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("user@example.com"); err != nil {
		t.Errorf("expected valid email, got %v", err)
	}
	for _, bad := range []string{"", "plain", "missing@tld", "@example.com", "user@.com"} {
		if err := ValidateEmail(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestValidateMobile(t *testing.T) {
	for _, good := range []string{"+15551234567", "15551234567", "+442071838750"} {
		if err := ValidateMobile(good); err != nil {
			t.Errorf("expected %q valid, got %v", good, err)
		}
	}
	for _, bad := range []string{"", "12345", "+1-555-123-4567", "notanumber", "+123456789012345678"} {
		if err := ValidateMobile(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
