package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ErrInvalidAmount = errors.New("invalid money amount")

// Money is a decimal amount in a single ISO 4217 currency.
type Money struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

func New(amount decimal.Decimal, currencyCode string) Money {
	return Money{Amount: amount, CurrencyCode: strings.ToUpper(currencyCode)}
}

// Parse reads an amount the way catalog data carries it ("12.00").
func Parse(amount, currencyCode string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return New(d, currencyCode), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(amount, currencyCode string) Money {
	m, err := Parse(amount, currencyCode)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalJSON keeps the catalog's wire shape: {"amount":"12.00","currencyCode":"USD"}.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount       string `json:"amount"`
		CurrencyCode string `json:"currencyCode"`
	}{m.Fixed(), m.CurrencyCode})
}

func (m Money) IsZero() bool { return m.Amount.IsZero() }

func (m Money) Mul(quantity int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(quantity))), CurrencyCode: m.CurrencyCode}
}

func (m Money) Sub(o Money) Money {
	return Money{Amount: m.Amount.Sub(o.Amount), CurrencyCode: m.CurrencyCode}
}

func (m Money) LessThan(o Money) bool { return m.Amount.LessThan(o.Amount) }

func (m Money) Equal(o Money) bool {
	return m.CurrencyCode == o.CurrencyCode && m.Amount.Equal(o.Amount)
}

// Fixed renders the amount with two decimals, rounding half away from zero.
func (m Money) Fixed() string {
	return m.Amount.Round(2).StringFixed(2)
}

func (m Money) Format(lang language.Tag) string {
	return FormatAmount(m.Amount, m.CurrencyCode, lang)
}

func (m Money) String() string {
	return m.Format(language.English)
}

// FormatString formats a decimal amount string; unparsable input renders as zero.
func FormatString(amount, currencyCode string, lang language.Tag) string {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		d = decimal.Zero
	}
	return FormatAmount(d, currencyCode, lang)
}

// FormatAmount renders a locale-aware currency string using the narrow
// currency symbol and exactly two fraction digits, e.g. "$600.00".
// Codes x/text does not know are rendered as "XYZ 12.00".
func FormatAmount(amount decimal.Decimal, currencyCode string, lang language.Tag) string {
	p := message.NewPrinter(lang)
	value, _ := amount.Round(2).Float64()
	digits := p.Sprint(number.Decimal(value, number.Scale(2)))

	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code + " " + digits
	}

	symbol := p.Sprint(currency.NarrowSymbol(unit))
	if value < 0 {
		return "-" + symbol + strings.TrimPrefix(digits, "-")
	}
	return symbol + digits
}
