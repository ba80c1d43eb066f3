package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSessionRoundTrip(t *testing.T) {
	ctx := WithSession(context.Background(), Session{Username: "amina", Role: RolePatient})

	sess, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "amina", sess.Username)
	assert.True(t, sess.IsPatient())
	assert.False(t, sess.IsDoctor())
}

func TestFromContextMissing(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)
}

func TestFromContextEmptyUsername(t *testing.T) {
	ctx := WithSession(context.Background(), Session{Role: RoleDoctor})
	_, ok := FromContext(ctx)
	assert.False(t, ok)
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RolePatient.Valid())
	assert.True(t, RoleDoctor.Valid())
	assert.False(t, Role("admin").Valid())
}
