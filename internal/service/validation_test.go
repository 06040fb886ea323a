package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		want    string
		wantErr bool
	}{
		{name: "plain address", email: "viewer@example.com", want: "viewer@example.com"},
		{name: "lowercased", email: "Viewer@Example.COM", want: "viewer@example.com"},
		{name: "surrounding spaces trimmed", email: "  viewer@example.com  ", want: "viewer@example.com"},
		{name: "empty", email: "", wantErr: true},
		{name: "no at sign", email: "viewer.example.com", wantErr: true},
		{name: "display name rejected", email: "Viewer <viewer@example.com>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "meets the policy", password: "Sup3rSecret"},
		{name: "exactly eight characters", password: "Abcdef12"},
		{name: "too short", password: "Ab1", wantErr: true},
		{name: "no upper-case", password: "lowercase123", wantErr: true},
		{name: "no lower-case", password: "UPPERCASE123", wantErr: true},
		{name: "no digit", password: "NoDigitsHere", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
