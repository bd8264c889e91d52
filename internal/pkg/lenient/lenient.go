// Package lenient coerces loosely typed form input the way the front desk
// expects: anything that is not a usable number counts as zero instead of
// failing the request.
package lenient

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)

	// maxMagnitude is the first value a NUMERIC(12,2) column cannot hold.
	maxMagnitude = decimal.New(1, 10)
)

// maxExponent keeps scientific notation from expanding into huge numbers.
const maxExponent = 32

// ParseDecimal reads the leading numeric prefix of s ("12.5kg" is 12.5).
// No prefix, or a magnitude of 1e10 and above, means zero.
func ParseDecimal(s string) decimal.Decimal {
	m := floatPrefix.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return decimal.Zero
	}
	if exp := m[2]; exp != "" {
		n, err := strconv.Atoi(exp[1:])
		if err != nil || n > maxExponent || n < -maxExponent {
			return decimal.Zero
		}
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(m[0], "+"))
	if err != nil {
		return decimal.Zero
	}
	if d.Abs().Cmp(maxMagnitude) >= 0 {
		return decimal.Zero
	}
	return d
}

// ParseInt reads the leading integer prefix of s ("2.9" is 2). No prefix
// means zero.
func ParseInt(s string) int {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns the calendar day in
// UTC. Anything else is the zero time.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}

// rawString returns the text of a JSON scalar: strings unquoted, numbers
// verbatim, everything else empty.
func rawString(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ""
		}
		return s
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(data)
	default:
		return ""
	}
}

// Number is a decimal that never fails to decode.
type Number struct {
	d decimal.Decimal
}

func NewNumber(d decimal.Decimal) Number { return Number{d: d} }

func (n Number) Decimal() decimal.Decimal { return n.d }

func (n *Number) UnmarshalJSON(data []byte) error {
	n.d = ParseDecimal(rawString(data))
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.d.String()), nil
}

// Int is an integer that never fails to decode. Fractions are truncated.
type Int int

func (i *Int) UnmarshalJSON(data []byte) error {
	*i = Int(ParseInt(rawString(data)))
	return nil
}

func (i Int) Int() int { return int(i) }

// Date is a calendar day that never fails to decode. Bad input is the zero
// date, which the booking rules then report as missing.
type Date struct {
	t time.Time
}

func NewDate(t time.Time) Date { return Date{t: t} }

func (d Date) Time() time.Time { return d.t }

func (d *Date) UnmarshalJSON(data []byte) error {
	d.t = ParseDate(rawString(data))
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.t.Format(time.DateOnly))
}
