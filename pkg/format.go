package pkg

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatting utilities shared by the decisioning engine and HTTP responses.
// All output follows pt-BR conventions, matching what end users see.

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

var dateOnlyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var saoPaulo = func() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}()

// FormatCurrency renders a value as Brazilian Real, e.g. "R$ 85.000,00".
func FormatCurrency(value float64) string {
	return ptBR.Sprintf("R$ %v", number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatDate renders a date string as dd/mm/yyyy.
//
// Accepts both plain dates (2026-02-09) and ISO timestamps
// (2026-02-06T01:35:24.085Z). Returns "-" for anything unparseable.
func FormatDate(dateString string) string {
	dateString = strings.TrimSpace(dateString)
	if dateString == "" {
		return "-"
	}

	if dateOnlyRe.MatchString(dateString) {
		parts := strings.Split(dateString, "-")
		return parts[2] + "/" + parts[1] + "/" + parts[0]
	}

	t, err := time.Parse(time.RFC3339, dateString)
	if err != nil {
		return "-"
	}
	return t.In(saoPaulo).Format("02/01/2006")
}

// FormatDateTime renders a timestamp as dd/mm/yyyy HH:mm in São Paulo time.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(saoPaulo).Format("02/01/2006 15:04")
}

// Greeting returns the salutation for the given local time.
func Greeting(t time.Time) string {
	switch hour := t.In(saoPaulo).Hour(); {
	case hour < 12:
		return "Bom dia"
	case hour < 18:
		return "Boa tarde"
	default:
		return "Boa noite"
	}
}
