package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyPrefix is the label shoppers see in front of every price.
const CurrencyPrefix = "Rs."

var ErrInvalidPrice = errors.New("invalid price")

var displayPrinter = message.NewPrinter(language.English)

// Price is a catalog price. Amount is the canonical value used for every
// comparison; Display is what the storefront shows.
type Price struct {
	Amount  decimal.Decimal
	Display string
}

// NewPrice builds a Price from a raw amount, rendering it as "Rs. 1,200".
func NewPrice(amount decimal.Decimal) Price {
	return Price{Amount: amount, Display: FormatPrice(amount)}
}

// FormatPrice renders an amount with thousands grouping and no fraction digits.
func FormatPrice(amount decimal.Decimal) string {
	return displayPrinter.Sprintf("%s %d", CurrencyPrefix, amount.Round(0).IntPart())
}

// ParsePrice normalizes a formatted price such as "Rs. 1,200" or "1200.50".
// The currency prefix and thousands separators are dropped; a decimal
// fraction is kept.
func ParsePrice(s string) (Price, error) {
	raw := strings.TrimSpace(s)

	start := strings.IndexFunc(raw, unicode.IsDigit)
	if start < 0 {
		return Price{}, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	if start > 0 && raw[start-1] == '-' {
		start--
	}

	digits := strings.NewReplacer(",", "", " ", "").Replace(raw[start:])
	amount, err := decimal.NewFromString(digits)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	if !strings.HasPrefix(raw, CurrencyPrefix) {
		return NewPrice(amount), nil
	}
	return Price{Amount: amount, Display: raw}, nil
}

// Compare orders two prices by amount.
func (p Price) Compare(other Price) int {
	return p.Amount.Cmp(other.Amount)
}

func (p Price) String() string {
	return p.Display
}

// UnmarshalJSON accepts either a formatted string or a bare JSON number.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParsePrice(s)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	amount, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPrice, data)
	}
	*p = NewPrice(amount)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Display)
}
