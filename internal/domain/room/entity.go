package room

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"strings"
	"time"
)

var (
	ErrEmptyRoomName   = errors.New("room name cannot be empty")
	ErrRoomNameTooLong = errors.New("room name is too long (max 255 characters)")
	ErrInvalidRoomCode = errors.New("room code must be 4 characters of A-Z or 0-9")
)

const (
	MaxRoomNameLength = 255
	CodeLength        = 4
	codeAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

type Room struct {
	id        string
	name      string
	roomType  string
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(id, name, roomType string) (*Room, error) {
	if !IsRoomCode(id) {
		return nil, ErrInvalidRoomCode
	}
	r := &Room{id: id}
	if err := r.Update(name, roomType); err != nil {
		return nil, err
	}
	return r, nil
}

// Update renames the room. The code never changes.
func (r *Room) Update(name, roomType string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return ErrRoomNameTooLong
	}
	r.name = name
	r.roomType = strings.TrimSpace(roomType)
	return nil
}

func ReconstructRoom(id, name, roomType string, createdAt, updatedAt time.Time) *Room {
	return &Room{id: id, name: name, roomType: roomType, createdAt: createdAt, updatedAt: updatedAt}
}

func (r *Room) ID() string           { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Type() string         { return r.roomType }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

// NewRoomCode draws CodeLength characters uniformly from [A-Z0-9].
// A nil reader means crypto/rand.
func NewRoomCode(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	limit := big.NewInt(int64(len(codeAlphabet)))
	var sb strings.Builder
	sb.Grow(CodeLength)
	for range CodeLength {
		n, err := rand.Int(r, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

func IsRoomCode(s string) bool {
	if len(s) != CodeLength {
		return false
	}
	for i := range len(s) {
		if strings.IndexByte(codeAlphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}
