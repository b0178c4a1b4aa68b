// Package normalize converts raw record values into typed domain values.
// Every function here is pure.
package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

var errEmptyAmount = errors.New("empty amount")

// Amount parses an amount that may use a comma as decimal separator and
// rounds it to two decimals. When both separators occur, the last one is the
// decimal separator and the other one groups thousands ("1.234,56" and
// "1,234.56" are both 1234.56).
func Amount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '€' {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return decimal.Zero, errEmptyAmount
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastComma >= 0 && lastDot >= 0:
		s = strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not parse amount '%s': %w", raw, err)
	}
	return d.Round(2), nil
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"02-01-2006",
	"02/01/2006",
	"2-1-2006",
	"2/1/2006",
	"02.01.2006",
	"20060102",
	"20060102150405",
}

// Date parses the date formats found in recruitment files. Day comes before
// month in every ambiguous layout. The result is truncated to the day.
func Date(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return DateOnly(t), true
		}
	}
	return time.Time{}, false
}

// DateOnly drops the time of day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay compares two dates at day granularity. Two nil dates are equal.
func SameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return DateOnly(*a).Equal(DateOnly(*b))
}

// PhoneNumeric keeps only the digits of a phone number.
func PhoneNumeric(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IBAN removes spacing and upper-cases an IBAN.
func IBAN(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}

// CountryISO returns the upper-cased two letter ISO code, or "" if raw is
// not one.
func CountryISO(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) != 2 || !unicode.IsLetter(rune(s[0])) || !unicode.IsLetter(rune(s[1])) {
		return ""
	}
	return s
}

// StreetAddress joins street name, number and unit.
func StreetAddress(name string, number int, unit string) string {
	parts := []string{strings.TrimSpace(name)}
	if number != 0 {
		parts = append(parts, fmt.Sprintf("%d", number))
	}
	parts = append(parts, strings.TrimSpace(unit))
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// OrganizationNumber formats a Belgian enterprise number as 0123.456.789.
// Values that do not hold 9 or 10 digits are returned trimmed but unchanged.
func OrganizationNumber(raw string) string {
	digits := PhoneNumeric(raw)
	if len(digits) == 9 {
		digits = "0" + digits
	}
	if len(digits) != 10 {
		return strings.TrimSpace(raw)
	}
	return digits[:4] + "." + digits[4:7] + "." + digits[7:]
}

// FakeEmailMatcher recognises placeholder addresses that must never be
// stored ("noemail@...", "xxx@xxx.be").
type FakeEmailMatcher struct {
	patterns []*regexp.Regexp
}

// NewFakeEmailMatcher compiles the given case-insensitive patterns.
func NewFakeEmailMatcher(patterns []string) (*FakeEmailMatcher, error) {
	m := &FakeEmailMatcher{}
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("invalid fake email pattern %q: %w", p, err)
		}
		m.patterns = append(m.patterns, re)
	}
	return m, nil
}

// IsFake reports whether email is a placeholder or not an address at all.
func (m *FakeEmailMatcher) IsFake(email string) bool {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return true
	}
	for _, re := range m.patterns {
		if re.MatchString(email) {
			return true
		}
	}
	return false
}

// SplitLabels splits a "/" separated list of labels, dropping empty ones.
func SplitLabels(raw string) []string {
	var labels []string
	for _, part := range strings.Split(raw, "/") {
		if p := strings.TrimSpace(part); p != "" {
			labels = append(labels, p)
		}
	}
	return labels
}
