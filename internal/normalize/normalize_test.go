package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "comma decimal", raw: "12,5", want: "12.50"},
		{name: "dot decimal", raw: "12.5", want: "12.50"},
		{name: "thousands dot, decimal comma", raw: "1.234,56", want: "1234.56"},
		{name: "thousands comma, decimal dot", raw: "1,234.56", want: "1234.56"},
		{name: "rounds to two decimals", raw: "10.005", want: "10.01"},
		{name: "euro sign and spaces", raw: " € 15,00 ", want: "15.00"},
		{name: "integer", raw: "20", want: "20.00"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "garbage", raw: "twelve", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Amount(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestAmount_StableOnNormalizedInput(t *testing.T) {
	for _, raw := range []string{"12,5", "1.234,56", "7.777", "0,01"} {
		first, err := Amount(raw)
		require.NoError(t, err)
		second, err := Amount(first.StringFixed(2))
		require.NoError(t, err)
		assert.True(t, first.Equal(second), "amount %q not stable: %s vs %s", raw, first, second)
	}
}

func TestDate(t *testing.T) {
	want := time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{"2020-01-10", "10-01-2020", "10/01/2020", "10/1/2020", "20200110", "2020-01-10 14:30:00", "10.01.2020"} {
		got, ok := Date(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	for _, raw := range []string{"", "  ", "yesterday", "2020-13-45"} {
		_, ok := Date(raw)
		assert.False(t, ok, raw)
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(1980, 5, 4, 8, 0, 0, 0, time.UTC)
	evening := time.Date(1980, 5, 4, 22, 30, 0, 0, time.UTC)
	next := time.Date(1980, 5, 5, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(&morning, &evening))
	assert.False(t, SameDay(&morning, &next))
	assert.True(t, SameDay(nil, nil))
	assert.False(t, SameDay(&morning, nil))
}

func TestPhoneNumericAndIBAN(t *testing.T) {
	assert.Equal(t, "32475123456", PhoneNumeric("+32 475/12.34.56"))
	assert.Equal(t, "0475123456", PhoneNumeric("0475 12 34 56"))
	assert.Equal(t, "BE62510007547061", IBAN(" be62 5100 0754 7061 "))
}

func TestCountryISO(t *testing.T) {
	assert.Equal(t, "BE", CountryISO(" be "))
	assert.Equal(t, "", CountryISO("Belgium"))
	assert.Equal(t, "", CountryISO("1A"))
}

func TestStreetAddress(t *testing.T) {
	assert.Equal(t, "Kerkstraat 12 bus 3", StreetAddress(" Kerkstraat ", 12, "bus 3"))
	assert.Equal(t, "Kerkstraat", StreetAddress("Kerkstraat", 0, ""))
}

func TestOrganizationNumber(t *testing.T) {
	assert.Equal(t, "0123.456.789", OrganizationNumber("0123456789"))
	assert.Equal(t, "0123.456.789", OrganizationNumber("BE 123.456.789"))
	assert.Equal(t, "12-34", OrganizationNumber(" 12-34 "))
}

func TestFakeEmailMatcher(t *testing.T) {
	m, err := NewFakeEmailMatcher([]string{`^(no|geen)[-_.]?e?mail@`, `@example\.`})
	require.NoError(t, err)

	assert.True(t, m.IsFake("noemail@aivl.be"))
	assert.True(t, m.IsFake("GEEN-MAIL@aivl.be"))
	assert.True(t, m.IsFake("jan@example.com"))
	assert.True(t, m.IsFake("not an address"))
	assert.False(t, m.IsFake("jan.peeters@telenet.be"))

	_, err = NewFakeEmailMatcher([]string{"("})
	assert.Error(t, err)
}

func TestSplitLabels(t *testing.T) {
	assert.Equal(t, []string{"Human rights", "Refugees"}, SplitLabels(" Human rights / Refugees /"))
	assert.Nil(t, SplitLabels(""))
}

func TestOrganizationFromNotes(t *testing.T) {
	data, ok := OrganizationFromNotes("Bedrijf: Bakkerij Peeters; KBO: 0123456789\nFunctie: zaakvoerder")
	require.True(t, ok)
	assert.Equal(t, OrganizationData{
		Name:     "Bakkerij Peeters",
		Number:   "0123.456.789",
		JobTitle: "zaakvoerder",
	}, data)

	_, ok = OrganizationFromNotes("called back twice; Function: manager")
	assert.False(t, ok)
}
