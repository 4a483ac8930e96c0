package account

import (
	"errors"
	"fmt"
	"strings"
)

// NEAR account ID length bounds, per the protocol's account-id rules.
const (
	MinIDLen = 2
	MaxIDLen = 64
)

// ErrInvalidID is returned when an account ID fails validation.
var ErrInvalidID = errors.New("invalid account id")

// ValidateID checks id against the NEAR account-id rules: 2–64 characters,
// lowercase alphanumeric segments separated by single '.', '-' or '_', with
// no leading or trailing separator.
func ValidateID(id string) error {
	if len(id) < MinIDLen || len(id) > MaxIDLen {
		return fmt.Errorf("%w: %q must be %d–%d characters", ErrInvalidID, id, MinIDLen, MaxIDLen)
	}
	prevSep := true // a separator at position 0 is invalid
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			prevSep = false
		case c == '.' || c == '-' || c == '_':
			if prevSep {
				return fmt.Errorf("%w: %q has a misplaced separator at position %d", ErrInvalidID, id, i)
			}
			prevSep = true
		default:
			return fmt.Errorf("%w: %q contains disallowed character %q", ErrInvalidID, id, string(c))
		}
	}
	if prevSep {
		return fmt.Errorf("%w: %q ends with a separator", ErrInvalidID, id)
	}
	return nil
}

// Sub derives a sub-account ID under master, e.g. Sub("ft", "alice.testnet")
// returns "ft.alice.testnet".
func Sub(prefix, master string) (string, error) {
	id := prefix + "." + master
	if err := ValidateID(id); err != nil {
		return "", err
	}
	return id, nil
}

// IsSubOf reports whether id is a direct or transitive sub-account of master.
func IsSubOf(id, master string) bool {
	return strings.HasSuffix(id, "."+master)
}
