package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParse(t *testing.T) {
	t.Run("Valid amount", func(t *testing.T) {
		m, err := Parse("12.50", "usd")
		require.NoError(t, err)
		assert.Equal(t, "USD", m.CurrencyCode)
		assert.True(t, m.Amount.Equal(decimal.RequireFromString("12.5")))
	})

	t.Run("Invalid amount", func(t *testing.T) {
		_, err := Parse("twelve", "USD")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestArithmetic(t *testing.T) {
	unit := MustParse("8.00", "USD")

	total := unit.Mul(75)
	assert.Equal(t, "600.00", total.Fixed())

	diff := MustParse("10.00", "USD").Sub(unit)
	assert.Equal(t, "2.00", diff.Fixed())
	assert.Equal(t, "100.00", diff.Mul(50).Fixed())

	assert.True(t, unit.LessThan(MustParse("10", "USD")))
	assert.True(t, unit.Equal(MustParse("8", "USD")))
	assert.False(t, unit.Equal(MustParse("8", "INR")))
}

func TestFixedRounding(t *testing.T) {
	assert.Equal(t, "0.13", MustParse("0.125", "USD").Fixed())
	assert.Equal(t, "6.50", MustParse("6.5", "USD").Fixed())
}

func TestFormatAmount(t *testing.T) {
	t.Run("US dollars in English", func(t *testing.T) {
		assert.Equal(t, "$600.00", FormatString("600", "USD", language.English))
		assert.Equal(t, "$1,234.50", FormatString("1234.5", "USD", language.English))
	})

	t.Run("Rupees use the narrow symbol", func(t *testing.T) {
		got := FormatString("12.00", "INR", language.MustParse("en-IN"))
		assert.Contains(t, got, "₹")
		assert.Contains(t, got, "12.00")
	})

	t.Run("Unknown currency falls back to the code", func(t *testing.T) {
		assert.Equal(t, "ZZZ 5.00", FormatString("5", "ZZZ", language.English))
	})

	t.Run("Garbage amount renders as zero", func(t *testing.T) {
		assert.Equal(t, "$0.00", FormatString("abc", "USD", language.English))
	})
}

func TestMarshalJSON(t *testing.T) {
	b, err := json.Marshal(MustParse("6.5", "USD"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"6.50","currencyCode":"USD"}`, string(b))
}

func TestUnmarshalJSON(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"19.99","currencyCode":"INR"}`), &m))
	assert.Equal(t, "19.99", m.Fixed())
	assert.Equal(t, "INR", m.CurrencyCode)
}
