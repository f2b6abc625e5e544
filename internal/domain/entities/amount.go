package entities

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// USDDecimals is the implied decimal count of on-chain USD amounts.
const USDDecimals = 8

var usdScale = decimal.New(1, USDDecimals)

// ParseUSDAmount converts a user-entered USD decimal string into the
// gateway's 8-implied-decimal integer, rounding down. "12.34" -> 1234000000.
func ParseUSDAmount(input string) (*big.Int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", input)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("amount must be positive")
	}
	return d.Mul(usdScale).Floor().BigInt(), nil
}

// FormatUSD renders an 8-implied-decimal USD integer string with two
// decimal places, e.g. "1234000000" -> "12.34".
func FormatUSD(amountUSD string) string {
	d, err := decimal.NewFromString(amountUSD)
	if err != nil {
		return "0.00"
	}
	return d.Div(usdScale).StringFixed(2)
}

// FormatCountdown renders whole seconds as m:ss, e.g. 125 -> "2:05".
func FormatCountdown(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
