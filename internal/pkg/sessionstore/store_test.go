package sessionstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presencelab/presence-gateway-go/internal/domain/session"
)

func TestStore_PutGetDelete(t *testing.T) {
	store := NewStore(time.Hour)

	sess := session.New("presences.xlsx", nil, []string{"Alice"})
	store.Put(sess)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)
	assert.Equal(t, 1, store.Len())

	store.Delete(sess.ID)
	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestStore_GetUnknown(t *testing.T) {
	store := NewStore(time.Hour)
	_, err := store.Get("nope")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}
