package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClientID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"simple", "alice", false},
		{"with allowed punctuation", "user_1-2.3@acme+x", false},
		{"with slash", "tenant/alice", false},
		{"empty", "", true},
		{"colon is the key separator", "alice:evil", true},
		{"non-ascii", "алиса", true},
		{"space", "a b", true},
		{"too long", strings.Repeat("a", 65), true},
		{"max length", strings.Repeat("a", 64), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClientID(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateResource(t *testing.T) {
	assert.NoError(t, ValidateResource("api/search"))
	assert.NoError(t, ValidateResource(strings.Repeat("r", 128)))
	assert.Error(t, ValidateResource(""))
	assert.Error(t, ValidateResource("api:search"))
	assert.Error(t, ValidateResource(strings.Repeat("r", 129)))
}
