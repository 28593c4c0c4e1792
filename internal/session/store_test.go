package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumistore/backoffice/internal/pkg/auth"
	"github.com/lumistore/backoffice/internal/session"
)

func completeSession() session.Session {
	return session.Session{
		UserID:     "staff-42",
		Role:       auth.RoleAdmin,
		Credential: "some-credential",
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

func TestStore_Lifecycle(t *testing.T) {
	t.Parallel()

	store := session.NewStore()

	_, status := store.Get()
	assert.Equal(t, session.StatusUninitialized, status)

	store.StartResolving()
	_, status = store.Get()
	assert.Equal(t, session.StatusResolving, status)

	expected := completeSession()
	require.NoError(t, store.Set(expected))

	current, status := store.Get()
	assert.Equal(t, session.StatusAuthenticated, status)
	assert.Equal(t, expected, current)

	store.Clear()
	current, status = store.Get()
	assert.Equal(t, session.StatusAnonymous, status)
	assert.Empty(t, current)
}

func TestStore_Set_RejectsPartialSession(t *testing.T) {
	tests := []struct {
		name    string
		session session.Session
	}{
		{
			name: "missing_role",
			session: session.Session{
				UserID:     "staff-42",
				Credential: "some-credential",
			},
		},
		{
			name: "missing_user_id",
			session: session.Session{
				Role:       auth.RoleSale,
				Credential: "some-credential",
			},
		},
		{
			name:    "empty",
			session: session.Session{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := session.NewStore()
			err := store.Set(tc.session)
			assert.ErrorIs(t, err, session.ErrPartialSession)

			_, status := store.Get()
			assert.Equal(t, session.StatusUninitialized, status)
		})
	}
}

func TestStore_Subscribe_NotifiesOnEveryTransition(t *testing.T) {
	t.Parallel()

	store := session.NewStore()

	var transitions []session.Status
	store.Subscribe(func(_ session.Session, status session.Status) {
		transitions = append(transitions, status)
	})

	require.NoError(t, store.Set(completeSession()))
	store.Clear()

	assert.Equal(t, []session.Status{session.StatusAuthenticated, session.StatusAnonymous}, transitions)
}
