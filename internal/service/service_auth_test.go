package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/logger"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

func newTestServices(t *testing.T) (*Services, *models.AppState) {
	t.Helper()
	state := models.NewAppState()
	return NewServices(state, logger.Nop()), state
}

func TestAuthService_FirstLaunchFlow(t *testing.T) {
	// Arrange
	svc, state := newTestServices(t)

	require.True(t, svc.Auth.IsFirstEverLaunch())
	require.True(t, svc.Auth.IsDefaultCredentials(models.DefaultUsername, models.DefaultPassword))
	require.False(t, svc.Auth.IsDefaultCredentials("admin", "wrong"))

	// Act
	pending, err := svc.Auth.CreatePendingConfigurator()

	// Assert
	require.NoError(t, err)
	require.Len(t, state.Configurators, 1)
	assert.True(t, pending.FirstLogin())
	assert.Equal(t, models.DefaultUsername, pending.Username())
	assert.False(t, svc.Auth.IsFirstEverLaunch())
}

func TestAuthService_CreatePendingConfigurator_OnlyOnce(t *testing.T) {
	// Arrange
	svc, state := newTestServices(t)
	_, err := svc.Auth.CreatePendingConfigurator()
	require.NoError(t, err)

	// Act
	_, err = svc.Auth.CreatePendingConfigurator()

	// Assert
	assert.ErrorIs(t, err, ErrConfiguratorExists)
	assert.Len(t, state.Configurators, 1)
}

func TestAuthService_CompleteRegistration(t *testing.T) {
	// Arrange
	svc, _ := newTestServices(t)
	pending, err := svc.Auth.CreatePendingConfigurator()
	require.NoError(t, err)

	// Act
	err = svc.Auth.CompleteRegistration(pending, "mario", "secret")

	// Assert
	require.NoError(t, err)
	assert.False(t, pending.FirstLogin())
	assert.Equal(t, "mario", pending.Username())

	// The transition is one-way: a second registration is rejected.
	err = svc.Auth.CompleteRegistration(pending, "another", "pass")
	assert.ErrorIs(t, err, models.ErrRegistrationCompleted)
	assert.Equal(t, "mario", pending.Username())
}

func TestAuthService_CompleteRegistration_DuplicateUsername(t *testing.T) {
	// Arrange
	svc, state := newTestServices(t)

	existing, err := models.RestoreConfigurator("Mario", "pw", false)
	require.NoError(t, err)
	state.Configurators = append(state.Configurators, existing)

	pending, err := models.NewConfigurator(models.DefaultUsername, models.DefaultPassword)
	require.NoError(t, err)
	state.Configurators = append(state.Configurators, pending)

	// Act: collision is case-insensitive and trim-insensitive.
	err = svc.Auth.CompleteRegistration(pending, "  mario ", "secret")

	// Assert
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.True(t, pending.FirstLogin(), "failed registration must not consume the first login")
	assert.Equal(t, models.DefaultUsername, pending.Username())
}

func TestAuthService_IsUsernameTaken(t *testing.T) {
	svc, state := newTestServices(t)

	c, err := models.RestoreConfigurator("Mario", "pw", false)
	require.NoError(t, err)
	state.Configurators = append(state.Configurators, c)

	assert.True(t, svc.Auth.IsUsernameTaken("mario"))
	assert.True(t, svc.Auth.IsUsernameTaken("  MARIO  "))
	assert.False(t, svc.Auth.IsUsernameTaken("luigi"))
}

func TestAuthService_Authenticate(t *testing.T) {
	// Arrange
	svc, state := newTestServices(t)

	c, err := models.RestoreConfigurator("mario", "secret", false)
	require.NoError(t, err)
	state.Configurators = append(state.Configurators, c)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "exact match", username: "mario", password: "secret"},
		{name: "username case-insensitive", username: "MaRiO", password: "secret"},
		{name: "username trimmed", username: "  mario  ", password: "secret"},
		{name: "wrong password", username: "mario", password: "Secret", wantErr: ErrAuthenticationFailed},
		{name: "unknown username", username: "luigi", password: "secret", wantErr: ErrAuthenticationFailed},
		{name: "empty credentials", username: "", password: "", wantErr: ErrAuthenticationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Auth.Authenticate(tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Same(t, c, got)
		})
	}
}
