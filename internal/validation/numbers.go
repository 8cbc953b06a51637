package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/RecipeBook_Go/internal/domain"
)

// parseDecimal parses a numeral with either a dot or a comma as decimal separator.
// Blank input reads as zero. Only finite values are accepted.
func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(strings.Replace(s, ",", ".", 1))
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParsePrice reads an optional price. Blank input means no price.
func ParsePrice(s string) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	f, ok := parseDecimal(s)
	if !ok {
		return nil, domain.Validation(MsgPriceNotNumber)
	}
	if f < 0 {
		return nil, domain.Validation(MsgPriceNegative)
	}
	return &f, nil
}

// ParseValidQuantity accepts a number or a numeral string and returns a
// strictly positive finite quantity.
func ParseValidQuantity(raw interface{}) (float64, error) {
	var (
		value float64
		ok    bool
	)

	switch v := raw.(type) {
	case nil:
		return 0, domain.Validation(domain.MsgQuantityRequired)
	case string:
		if v == "" {
			return 0, domain.Validation(domain.MsgQuantityRequired)
		}
		value, ok = parseDecimal(v)
	case *string:
		if v == nil || *v == "" {
			return 0, domain.Validation(domain.MsgQuantityRequired)
		}
		value, ok = parseDecimal(*v)
	case float64:
		value, ok = v, true
	case float32:
		value, ok = float64(v), true
	case int:
		value, ok = float64(v), true
	case int64:
		value, ok = float64(v), true
	case int32:
		value, ok = float64(v), true
	case json.Number:
		value, ok = parseDecimal(string(v))
	}

	if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, domain.Validation(domain.MsgQuantityNaN)
	}
	if value <= 0 {
		return 0, domain.Validation(domain.MsgQuantityPositive)
	}
	return value, nil
}
