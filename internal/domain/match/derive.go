package match

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// RunRate returns runs per over rounded to two places, or 0 when no overs
// were bowled. Ties are resolved half-to-even on the exact binary quotient.
func RunRate(runs int, overs decimal.Decimal) float64 {
	if !overs.IsPositive() {
		return 0
	}
	oversFloat := overs.InexactFloat64()
	if oversFloat <= 0 {
		return 0
	}
	quotient := float64(runs) / oversFloat
	if math.IsNaN(quotient) || math.IsInf(quotient, 0) || quotient < 0 {
		return 0
	}

	exact := new(big.Float).SetFloat64(quotient).Text('f', 400)
	value, err := decimal.NewFromString(exact)
	if err != nil {
		return 0
	}
	return value.RoundBank(2).InexactFloat64()
}

// ParseOvers reads an overs value such as "19.4" or 19.4. Malformed input
// yields zero.
func ParseOvers(raw any) decimal.Decimal {
	switch typed := raw.(type) {
	case nil:
		return decimal.Zero
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) || typed < 0 {
			return decimal.Zero
		}
		return decimal.NewFromFloat(typed)
	case int:
		return decimal.NewFromInt(int64(typed))
	case int64:
		return decimal.NewFromInt(typed)
	case string:
		value, err := decimal.NewFromString(strings.TrimSpace(typed))
		if err != nil || value.IsNegative() {
			return decimal.Zero
		}
		return value
	default:
		return decimal.Zero
	}
}
