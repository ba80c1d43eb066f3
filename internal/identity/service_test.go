package identity

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
	"github.com/Simply-Coder-start/Medi-Triage/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	repo := NewRedisRepository(store.New(redis.NewClient(&redis.Options{Addr: mr.Addr()})))
	return NewService(repo, NewTokenIssuer("test-secret", time.Hour), nil)
}

func patientReq(username string) RegisterRequest {
	return RegisterRequest{
		Username: username,
		Password: "hunter2",
		Name:     "Amina Diallo",
		Role:     session.RolePatient,
	}
}

func TestRegisterPatient(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, patientReq("amina"))
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, session.RolePatient, user.Role)

	// token round-trips through the issuer
	sess, err := NewTokenIssuer("test-secret", time.Hour).Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "amina", sess.Username)
	assert.Equal(t, session.RolePatient, sess.Role)
}

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	svc := newTestService(t)
	user, _, err := svc.Register(context.Background(), patientReq("amina"))
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "hunter2")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, patientReq("amina"))
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, patientReq("amina"))
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  RegisterRequest
		want error
	}{
		{"missing name", RegisterRequest{Username: "u", Password: "p", Role: session.RolePatient}, ErrMissingFields},
		{"missing password", RegisterRequest{Username: "u", Name: "n", Role: session.RolePatient}, ErrMissingFields},
		{"unknown role", RegisterRequest{Username: "u", Password: "p", Name: "n", Role: "admin"}, ErrUnknownRole},
		{"doctor without specialty", RegisterRequest{Username: "u", Password: "p", Name: "n", Role: session.RoleDoctor}, ErrMissingFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegisterDoctorDefaultsLocation(t *testing.T) {
	svc := newTestService(t)
	user, _, err := svc.Register(context.Background(), RegisterRequest{
		Username:  "drkim",
		Password:  "pw",
		Name:      "Dr. Kim",
		Role:      session.RoleDoctor,
		Specialty: "Cardiology",
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultLocation, user.Location)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, _, err := svc.Register(ctx, patientReq("amina"))
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		user, token, err := svc.Login(ctx, LoginRequest{Username: "amina", Password: "hunter2", Role: session.RolePatient})
		require.NoError(t, err)
		assert.Equal(t, "amina", user.Username)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, LoginRequest{Username: "amina", Password: "nope", Role: session.RolePatient})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login(ctx, LoginRequest{Username: "ghost", Password: "pw", Role: session.RolePatient})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("role mismatch", func(t *testing.T) {
		_, _, err := svc.Login(ctx, LoginRequest{Username: "amina", Password: "hunter2", Role: session.RoleDoctor})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateDoctorProfile(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, _, err := svc.Register(ctx, RegisterRequest{
		Username: "drkim", Password: "pw", Name: "Dr. Kim",
		Role: session.RoleDoctor, Specialty: "Cardiology",
	})
	require.NoError(t, err)

	bio := "20 years in interventional cardiology"
	user, err := svc.UpdateDoctorProfile(ctx, session.Session{Username: "drkim", Role: session.RoleDoctor}, &bio, nil)
	require.NoError(t, err)
	assert.Equal(t, bio, user.Bio)
	assert.Equal(t, DefaultLocation, user.Location)

	t.Run("patient rejected", func(t *testing.T) {
		_, err := svc.UpdateDoctorProfile(ctx, session.Session{Username: "amina", Role: session.RolePatient}, &bio, nil)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestDisplayNameFallsBackToUsername(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, _, err := svc.Register(ctx, patientReq("amina"))
	require.NoError(t, err)

	assert.Equal(t, "Amina Diallo", svc.DisplayName(ctx, "amina"))
	assert.Equal(t, "ghost", svc.DisplayName(ctx, "ghost"))
}
