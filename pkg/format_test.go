package pkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 85.000,00", FormatCurrency(85000))
	assert.Equal(t, "R$ 1.234,56", FormatCurrency(1234.56))
	assert.Equal(t, "R$ 0,00", FormatCurrency(0))
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"date only", "2026-02-09", "09/02/2026"},
		{"iso timestamp", "2026-02-06T12:35:24.085Z", "06/02/2026"},
		{"empty", "", "-"},
		{"garbage", "nao-e-data", "-"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDate(tc.in))
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "-", FormatDateTime(time.Time{}))

	ts := time.Date(2026, 2, 6, 15, 35, 0, 0, time.UTC)
	assert.Equal(t, "06/02/2026 12:35", FormatDateTime(ts))
}

func TestGreeting(t *testing.T) {
	morning := time.Date(2026, 2, 6, 9, 0, 0, 0, saoPaulo)
	afternoon := time.Date(2026, 2, 6, 15, 0, 0, 0, saoPaulo)
	night := time.Date(2026, 2, 6, 20, 0, 0, 0, saoPaulo)

	assert.Equal(t, "Bom dia", Greeting(morning))
	assert.Equal(t, "Boa tarde", Greeting(afternoon))
	assert.Equal(t, "Boa noite", Greeting(night))
}
