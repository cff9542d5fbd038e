package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input       string
		wantAmount  string
		wantDisplay string
	}{
		{"Rs. 1,200", "1200", "Rs. 1,200"},
		{"Rs. 900", "900", "Rs. 900"},
		{"Rs. 350,000", "350000", "Rs. 350,000"},
		{"1200", "1200", "Rs. 1,200"},
		{"  Rs. 2,499.50 ", "2499.5", "Rs. 2,499.50"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePrice(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !p.Amount.Equal(decimal.RequireFromString(tt.wantAmount)) {
				t.Errorf("amount = %s, want %s", p.Amount, tt.wantAmount)
			}
			if p.Display != tt.wantDisplay {
				t.Errorf("display = %q, want %q", p.Display, tt.wantDisplay)
			}
		})
	}
}

func TestParsePrice_Invalid(t *testing.T) {
	for _, input := range []string{"", "Rs.", "free", "Rs. 1.2.3"} {
		if _, err := ParsePrice(input); !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("ParsePrice(%q) error = %v, want ErrInvalidPrice", input, err)
		}
	}
}

func TestPrice_StringAndNumberNormalizeAlike(t *testing.T) {
	var fromString, fromNumber Price
	if err := json.Unmarshal([]byte(`"Rs. 1,200"`), &fromString); err != nil {
		t.Fatalf("string form: %v", err)
	}
	if err := json.Unmarshal([]byte(`1200`), &fromNumber); err != nil {
		t.Fatalf("number form: %v", err)
	}

	if fromString.Compare(fromNumber) != 0 {
		t.Errorf("expected equal amounts, got %s and %s", fromString.Amount, fromNumber.Amount)
	}
	if fromNumber.Display != "Rs. 1,200" {
		t.Errorf("expected number to render as %q, got %q", "Rs. 1,200", fromNumber.Display)
	}
}

func TestPrice_NumericOrderingIgnoresFormatting(t *testing.T) {
	small, _ := ParsePrice("Rs. 900")
	large, _ := ParsePrice("Rs. 1,200")

	if small.Compare(large) >= 0 {
		t.Errorf("expected Rs. 900 < Rs. 1,200")
	}
}

func TestPrice_MarshalJSON(t *testing.T) {
	p := NewPrice(decimal.NewFromInt(5000))
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"Rs. 5,000"` {
		t.Errorf("got %s", out)
	}
}

func TestPrice_UnmarshalRejectsGarbage(t *testing.T) {
	var p Price
	if err := json.Unmarshal([]byte(`true`), &p); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}
}
