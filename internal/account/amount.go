package account

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// NEAR amounts are denominated in yoctoNEAR on-chain: 1 NEAR = 10^24 yocto.
const yoctoDecimals = 24

// ErrInvalidAmount is returned when an amount string cannot be parsed.
var ErrInvalidAmount = errors.New("invalid amount")

// OneYocto returns 1 yoctoNEAR, the canonical attached deposit for
// ft_transfer and other one-yocto-guarded methods.
func OneYocto() *big.Int { return big.NewInt(1) }

// ParseNEAR converts a decimal NEAR string ("1", "0.5", "12.000001") into
// yoctoNEAR. More than 24 fractional digits is an error, as is anything
// that is not a plain unsigned decimal.
func ParseNEAR(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}

	whole, frac := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole, frac = s[:idx], s[idx+1:]
	}
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(frac) > yoctoDecimals {
		return nil, fmt.Errorf("%w: %q has more than %d fractional digits", ErrInvalidAmount, s, yoctoDecimals)
	}
	if whole == "" {
		whole = "0"
	}

	digits := whole + frac + strings.Repeat("0", yoctoDecimals-len(frac))
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
	}

	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return v, nil
}

// FormatYocto renders a yoctoNEAR value as a decimal NEAR string with
// trailing zeros trimmed ("1500000000000000000000000" → "1.5").
func FormatYocto(v *big.Int) string {
	s := v.String()
	if len(s) <= yoctoDecimals {
		s = strings.Repeat("0", yoctoDecimals-len(s)+1) + s
	}
	cut := len(s) - yoctoDecimals
	whole, frac := s[:cut], s[cut:]
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}
