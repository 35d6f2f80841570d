//go:build !integration

package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/move-labels/config"
	"github.com/guttosm/move-labels/internal/mocks"
)

func TestSeedAdmin(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.AuthConfig
		setupMocks func(*mocks.MockAuthService)
		want       bool
	}{
		{
			name: "creates the admin on first start",
			cfg:  config.AuthConfig{AdminUsername: "admin", AdminPassword: "move1234"},
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("SeedAdmin", mock.Anything, "admin", "move1234").Return(true, nil).Once()
			},
			want: true,
		},
		{
			name: "existing admin is kept",
			cfg:  config.AuthConfig{AdminUsername: "admin", AdminPassword: "move1234"},
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("SeedAdmin", mock.Anything, "admin", "move1234").Return(false, nil).Once()
			},
			want: false,
		},
		{
			name: "store error is logged, not fatal",
			cfg:  config.AuthConfig{AdminUsername: "admin", AdminPassword: "move1234"},
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("SeedAdmin", mock.Anything, "admin", "move1234").Return(false, errors.New("database error")).Once()
			},
			want: false,
		},
		{
			name:       "missing password skips seeding",
			cfg:        config.AuthConfig{AdminUsername: "admin"},
			setupMocks: func(*mocks.MockAuthService) {},
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mocks.NewMockAuthService(t)
			tt.setupMocks(auth)

			assert.Equal(t, tt.want, seedAdmin(auth, tt.cfg))
		})
	}
}
