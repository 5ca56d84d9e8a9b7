package validators

import (
	"testing"

	"github.com/anonto42/inko/backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Username string `validate:"required,min=3,max=30" errmsg:"Username must be 3-30 characters"`
	Password string `validate:"required,min=6" errmsg:"Password must be at least 6 characters"`
}

type untagged struct {
	Limit int `json:"limit" validate:"max=10"`
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name string
		in   credentials
		want string
	}{
		{"ok", credentials{"alice", "secret1"}, ""},
		{"missing username", credentials{"", "secret1"}, MissingFields},
		{"missing beats length", credentials{"ab", ""}, MissingFields},
		{"short username", credentials{"ab", "secret1"}, "Username must be 3-30 characters"},
		{"long username", credentials{"abcdefghijklmnopqrstuvwxyz12345", "secret1"}, "Username must be 3-30 characters"},
		{"short password", credentials{"alice", "12345"}, "Password must be at least 6 characters"},
		{"multibyte counted as characters", credentials{"жук", "secret1"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.in)
			if tt.want == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.KindValidation))
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestValidate_FallbackMessage(t *testing.T) {
	err := NewValidator().Validate(untagged{Limit: 11})
	require.Error(t, err)
	assert.Equal(t, "Invalid Limit", err.Error())
}

func TestValidate_NonStruct(t *testing.T) {
	err := NewValidator().Validate(42)
	require.Error(t, err)
	assert.Equal(t, "Invalid request payload", err.Error())
}
