package account_test

import (
	"math/big"
	"testing"

	"github.com/nearkit/nearctl/internal/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNEARWhole(t *testing.T) {
	v, err := account.ParseNEAR("1")
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000000000", v.String())
}

func TestParseNEARFraction(t *testing.T) {
	v, err := account.ParseNEAR("0.5")
	require.NoError(t, err)
	assert.Equal(t, "500000000000000000000000", v.String())
}

func TestParseNEARMixed(t *testing.T) {
	v, err := account.ParseNEAR("12.000001")
	require.NoError(t, err)
	assert.Equal(t, "12000001000000000000000000", v.String())
}

func TestParseNEARLeadingDot(t *testing.T) {
	v, err := account.ParseNEAR(".25")
	require.NoError(t, err)
	assert.Equal(t, "250000000000000000000000", v.String())
}

func TestParseNEARTrimsSpace(t *testing.T) {
	v, err := account.ParseNEAR(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, "3000000000000000000000000", v.String())
}

func TestParseNEARRejects(t *testing.T) {
	bad := []string{"", ".", "-1", "1e6", "1.2.3", "abc", "1,5", "0.1000000000000000000000001"}
	for _, s := range bad {
		_, err := account.ParseNEAR(s)
		assert.ErrorIs(t, err, account.ErrInvalidAmount, "amount %q should be rejected", s)
	}
}

func TestParseNEARMaxPrecision(t *testing.T) {
	// Exactly 24 fractional digits is the finest representable unit.
	v, err := account.ParseNEAR("0.000000000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())
}

func TestFormatYocto(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1000000000000000000000000", "1"},
		{"1500000000000000000000000", "1.5"},
		{"1", "0.000000000000000000000001"},
		{"0", "0"},
		{"12000001000000000000000000", "12.000001"},
	}
	for _, tt := range tests {
		v, ok := new(big.Int).SetString(tt.in, 10)
		require.True(t, ok)
		assert.Equal(t, tt.want, account.FormatYocto(v))
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"1", "0.5", "100", "42.000042"} {
		v, err := account.ParseNEAR(s)
		require.NoError(t, err)
		assert.Equal(t, s, account.FormatYocto(v))
	}
}

func TestOneYocto(t *testing.T) {
	assert.Equal(t, int64(1), account.OneYocto().Int64())
}
