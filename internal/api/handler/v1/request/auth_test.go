package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SignupRequest
		wantErr bool
	}{
		{
			name:    "valid",
			req:     SignupRequest{Email: "admin@example.com", Password: "secret-pw-1", ConfirmPassword: "secret-pw-1"},
			wantErr: false,
		},
		{
			name:    "missing email",
			req:     SignupRequest{Password: "secret-pw-1", ConfirmPassword: "secret-pw-1"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			req:     SignupRequest{Email: "not-an-email", Password: "secret-pw-1", ConfirmPassword: "secret-pw-1"},
			wantErr: true,
		},
		{
			name:    "password too short",
			req:     SignupRequest{Email: "admin@example.com", Password: "ab1", ConfirmPassword: "ab1"},
			wantErr: true,
		},
		{
			name:    "password without a digit",
			req:     SignupRequest{Email: "admin@example.com", Password: "onlyletters", ConfirmPassword: "onlyletters"},
			wantErr: true,
		},
		{
			name:    "password without a letter",
			req:     SignupRequest{Email: "admin@example.com", Password: "12345678", ConfirmPassword: "12345678"},
			wantErr: true,
		},
		{
			name:    "confirm mismatch",
			req:     SignupRequest{Email: "admin@example.com", Password: "secret-pw-1", ConfirmPassword: "secret-pw-2"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "admin@example.com", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "admin@example.com", Password: ""}).Validate())
}
