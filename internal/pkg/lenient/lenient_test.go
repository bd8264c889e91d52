//go:build unit

package lenient_test

import (
	"encoding/json"
	"testing"
	"time"

	"hotel-frontdesk/internal/pkg/lenient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	cases := map[string]string{
		"1000":    "1000",
		" 12.50 ": "12.5",
		"12.5abc": "12.5",
		".5":      "0.5",
		"-3":      "-3",
		"+7":      "7",
		"1e3":     "1000",
		"":        "0",
		"abc":     "0",
		"--1":     "0",

		"9999999999.99":          "9999999999.99",
		"10000000000":            "0",
		"-1e10":                  "0",
		"1e-3":                   "0.001",
		"1e20000000":             "0",
		"1e-20000000":            "0",
		"1e99999999999999999999": "0",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, lenient.ParseDecimal(in).String())
		})
	}
}

func TestParseDecimalHugeExponentIsCheap(t *testing.T) {
	start := time.Now()
	d := lenient.ParseDecimal("1e20000000")
	assert.Equal(t, "0.00", d.StringFixed(2))
	assert.Less(t, time.Since(start), time.Second)

	var n lenient.Number
	require.NoError(t, json.Unmarshal([]byte(`"1e20000000"`), &n))
	assert.True(t, n.Decimal().IsZero())
}

func TestParseInt(t *testing.T) {
	cases := map[string]int{
		"2":    2,
		"2.9":  2,
		"-4x":  -4,
		"x4":   0,
		"":     0,
		" 10 ": 10,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, lenient.ParseInt(in))
		})
	}
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), lenient.ParseDate("2024-07-15"))
	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), lenient.ParseDate("2024-07-15T22:10:00+06:00"))
	assert.True(t, lenient.ParseDate("15/07/2024").IsZero())
	assert.True(t, lenient.ParseDate("").IsZero())
}

func TestJSONDecoding(t *testing.T) {
	var payload struct {
		Price    lenient.Number `json:"price"`
		Quantity lenient.Int    `json:"quantity"`
		Nights   lenient.Int    `json:"nights"`
		Date     lenient.Date   `json:"date"`
		Missing  lenient.Number `json:"missing"`
	}
	body := `{"price":"150","quantity":2.7,"nights":true,"date":"2024-07-18"}`
	require.NoError(t, json.Unmarshal([]byte(body), &payload))

	assert.Equal(t, "150", payload.Price.Decimal().String())
	assert.Equal(t, 2, payload.Quantity.Int())
	assert.Equal(t, 0, payload.Nights.Int())
	assert.Equal(t, "2024-07-18", payload.Date.Time().Format(time.DateOnly))
	assert.True(t, payload.Missing.Decimal().IsZero())

	out, err := json.Marshal(payload.Date)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-07-18"`, string(out))
}
