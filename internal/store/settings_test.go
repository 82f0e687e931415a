package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/careconnect/internal/domain"
)

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.Login(ctx))
	authed, err := s.IsAuthenticated()
	require.NoError(t, err)
	assert.True(t, authed)

	require.NoError(t, s.Logout(ctx))
	authed, err = s.IsAuthenticated()
	require.NoError(t, err)
	assert.False(t, authed)
}

func TestUpdateSettingsShallowMerge(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	leftHand := true
	require.NoError(t, s.UpdateSettings(ctx, domain.SettingsPatch{LeftHandMode: &leftHand}))

	settings, err := s.Settings()
	require.NoError(t, err)
	assert.True(t, settings.LeftHandMode)
	// Everything else keeps its default.
	assert.True(t, settings.BiometricEnabled)
	assert.Equal(t, 30, settings.NotificationLeadTime)
	assert.Equal(t, 15, settings.SessionTimeout)
	assert.Equal(t, domain.TextMedium, settings.TextSize)
	assert.False(t, settings.HighContrast)
}

func TestUpdateSettingsMultipleFields(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	size := domain.TextXLarge
	lead := 60
	contrast := true
	require.NoError(t, s.UpdateSettings(ctx, domain.SettingsPatch{
		TextSize:             &size,
		NotificationLeadTime: &lead,
		HighContrast:         &contrast,
	}))

	settings, err := s.Settings()
	require.NoError(t, err)
	assert.Equal(t, domain.TextXLarge, settings.TextSize)
	assert.Equal(t, 60, settings.NotificationLeadTime)
	assert.True(t, settings.HighContrast)
	assert.True(t, settings.BiometricEnabled)
}

func TestCompleteOnboardingIsOneWay(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.CompleteOnboarding(ctx))
	onboarded, err := s.HasCompletedOnboarding()
	require.NoError(t, err)
	assert.True(t, onboarded)
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	original, err := s.Favorites()
	require.NoError(t, err)

	require.NoError(t, s.ToggleFavorite(ctx, "/wellness"))
	favorites, err := s.Favorites()
	require.NoError(t, err)
	assert.Contains(t, favorites, "/wellness")

	require.NoError(t, s.ToggleFavorite(ctx, "/wellness"))
	favorites, err = s.Favorites()
	require.NoError(t, err)
	assert.Equal(t, original, favorites)
}

func TestToggleFavoritePreservesOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.ToggleFavorite(ctx, "/wellness"))
	require.NoError(t, s.ToggleFavorite(ctx, "/medications"))

	favorites, err := s.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"/appointments", "/wellness"}, favorites)
}

func TestAddAppointment(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	appt, err := s.AddAppointment(ctx, domain.Appointment{
		Title:    "Cardiology",
		Date:     "2026-04-01",
		Time:     "09:30",
		Location: "Heart Clinic",
		Provider: "Dr. Lee",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, appt.ID)

	appts, err := s.Appointments()
	require.NoError(t, err)
	assert.Len(t, appts, 3)
}

func TestUpdateAppointmentShallowMerge(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	newTime := "15:30"
	require.NoError(t, s.UpdateAppointment(ctx, "1", domain.AppointmentPatch{Time: &newTime}))

	appts, err := s.Appointments()
	require.NoError(t, err)
	assert.Equal(t, "15:30", appts[0].Time)
	assert.Equal(t, "Dr. Smith - Follow-up", appts[0].Title)
	assert.Equal(t, "2026-02-20", appts[0].Date)
}

func TestDeleteAppointment(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.DeleteAppointment(ctx, "2"))

	appts, err := s.Appointments()
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "1", appts[0].ID)
}
