package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		problems int
	}{
		{"valid", "Sunrise7", 0},
		{"too short but has upper and digit", "Ab1", 1},
		{"missing uppercase", "sunrise7", 1},
		{"missing digit", "Sunrises", 1},
		{"everything wrong", "abc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ValidatePasswordPolicy(tt.password), tt.problems)
		})
	}
}
