package booking

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"

	"hotel-frontdesk/internal/pkg/errs"
)

const (
	reservationPrefix = "T-"
	reservationDigits = 8
)

var ten = big.NewInt(10)

// NewReservationID returns "T-" and eight independent uniform digits.
// Uniqueness is not guaranteed; the store rejects duplicates and the caller
// retries. A nil reader means crypto/rand.
func NewReservationID(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	var sb strings.Builder
	sb.Grow(len(reservationPrefix) + reservationDigits)
	sb.WriteString(reservationPrefix)
	for range reservationDigits {
		n, err := rand.Int(r, ten)
		if err != nil {
			return "", errs.Mark(errs.Wrap(err, "read random digit"), ErrIDGenerator)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}

func IsReservationID(s string) bool {
	if len(s) != len(reservationPrefix)+reservationDigits || !strings.HasPrefix(s, reservationPrefix) {
		return false
	}
	for _, c := range s[len(reservationPrefix):] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
