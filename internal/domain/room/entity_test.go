//go:build unit

package room_test

import (
	"bytes"
	"testing"

	"hotel-frontdesk/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomCode(t *testing.T) {
	t.Run("always four characters from the alphabet", func(t *testing.T) {
		for range 500 {
			code, err := room.NewRoomCode(nil)
			require.NoError(t, err)
			assert.Len(t, code, room.CodeLength)
			assert.True(t, room.IsRoomCode(code), code)
		}
	})

	t.Run("deterministic for a fixed source", func(t *testing.T) {
		seed := bytes.Repeat([]byte{0x00}, 64)
		a, err := room.NewRoomCode(bytes.NewReader(seed))
		require.NoError(t, err)
		b, err := room.NewRoomCode(bytes.NewReader(seed))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("exhausted source fails", func(t *testing.T) {
		_, err := room.NewRoomCode(bytes.NewReader(nil))
		assert.Error(t, err)
	})
}

func TestNewRoom(t *testing.T) {
	_, err := room.NewRoom("ab12", "Suite", "Suite")
	assert.ErrorIs(t, err, room.ErrInvalidRoomCode)

	_, err = room.NewRoom("AB12", "   ", "Suite")
	assert.ErrorIs(t, err, room.ErrEmptyRoomName)

	r, err := room.NewRoom("AB12", "  Garden Suite ", " Suite ")
	require.NoError(t, err)
	assert.Equal(t, "Garden Suite", r.Name())
	assert.Equal(t, "Suite", r.Type())
}
