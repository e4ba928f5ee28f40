package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "rex@example.com", NormalizeEmail("  Rex@Example.COM "))
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "owner@example.com", false},
		{"Valid with plus", "owner+dog@example.com", false},
		{"Empty", "", true},
		{"Missing at", "owner.example.com", true},
		{"Missing TLD", "owner@example", true},
		{"Too long", strings.Repeat("a", 250) + "@e.com", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 129)))
	assert.NoError(t, ValidatePassword("good-enough-pw"))
}

func TestValidateDogName(t *testing.T) {
	assert.Error(t, ValidateDogName(""))
	assert.Error(t, ValidateDogName("   "))
	assert.Error(t, ValidateDogName(strings.Repeat("w", 61)))
	assert.NoError(t, ValidateDogName("Rex"))
}

func TestValidateDogAge(t *testing.T) {
	assert.Error(t, ValidateDogAge(-1))
	assert.Error(t, ValidateDogAge(41))
	assert.NoError(t, ValidateDogAge(0))
	assert.NoError(t, ValidateDogAge(14))
}
