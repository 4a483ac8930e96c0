// Package token defines the typed argument payloads for the fungible-token
// and NFT contract calls. Marshaling these through encoding/json replaces
// hand-interpolated JSON strings, so quoting and escaping are never the
// caller's problem.
package token

import (
	"errors"
	"fmt"
)

// FTMetadataSpec is the metadata standard version the FT contract expects.
const FTMetadataSpec = "ft-1.0.0"

// Default metadata used by the contract's new_default_meta initializer.
const (
	DefaultFTName     = "Meta Gallery token"
	DefaultFTSymbol   = "METAG"
	DefaultFTDecimals = 24
)

// ErrInvalidMetadata is returned when token metadata fails validation.
var ErrInvalidMetadata = errors.New("invalid token metadata")

// FTMetadata mirrors the fungible-token metadata standard. Balances are
// U128 on-chain, so JSON carries them as base-10 strings.
type FTMetadata struct {
	Spec          string  `json:"spec"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Icon          *string `json:"icon,omitempty"`
	Reference     *string `json:"reference,omitempty"`
	ReferenceHash *string `json:"reference_hash,omitempty"`
	Decimals      uint8   `json:"decimals"`
}

// DefaultFTMetadata returns the metadata new_default_meta bakes in.
func DefaultFTMetadata() FTMetadata {
	return FTMetadata{
		Spec:     FTMetadataSpec,
		Name:     DefaultFTName,
		Symbol:   DefaultFTSymbol,
		Decimals: DefaultFTDecimals,
	}
}

// Validate mirrors the contract's assert_valid checks so a bad payload
// fails locally instead of burning gas.
func (m FTMetadata) Validate() error {
	if m.Spec != FTMetadataSpec {
		return fmt.Errorf("%w: spec must be %q, got %q", ErrInvalidMetadata, FTMetadataSpec, m.Spec)
	}
	if m.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMetadata)
	}
	if m.Symbol == "" {
		return fmt.Errorf("%w: symbol is required", ErrInvalidMetadata)
	}
	if m.Decimals > 38 {
		return fmt.Errorf("%w: decimals %d out of range", ErrInvalidMetadata, m.Decimals)
	}
	if (m.Reference == nil) != (m.ReferenceHash == nil) {
		return fmt.Errorf("%w: reference and reference_hash must be set together", ErrInvalidMetadata)
	}
	return nil
}

// FTInitArgs are the arguments for the contract's `new` initializer. When
// Metadata is nil the payload targets `new_default_meta` instead.
type FTInitArgs struct {
	OwnerID     string      `json:"owner_id"`
	TotalSupply string      `json:"total_supply"`
	Metadata    *FTMetadata `json:"metadata,omitempty"`
}

// InitMethod returns the initializer method name for these arguments.
func (a FTInitArgs) InitMethod() string {
	if a.Metadata == nil {
		return "new_default_meta"
	}
	return "new"
}

// Validate checks the init payload before it is sent.
func (a FTInitArgs) Validate() error {
	if a.OwnerID == "" {
		return errors.New("ft init: owner_id is required")
	}
	if err := validateU128(a.TotalSupply); err != nil {
		return fmt.Errorf("ft init: total_supply: %w", err)
	}
	if a.Metadata != nil {
		return a.Metadata.Validate()
	}
	return nil
}

// FTTransferArgs are the arguments for ft_transfer. Calls must attach
// exactly 1 yoctoNEAR.
type FTTransferArgs struct {
	ReceiverID string  `json:"receiver_id"`
	Amount     string  `json:"amount"`
	Memo       *string `json:"memo,omitempty"`
}

// Validate checks the transfer payload.
func (a FTTransferArgs) Validate() error {
	if a.ReceiverID == "" {
		return errors.New("ft transfer: receiver_id is required")
	}
	if err := validateU128(a.Amount); err != nil {
		return fmt.Errorf("ft transfer: amount: %w", err)
	}
	return nil
}

// BalanceOfArgs are the arguments for ft_balance_of.
type BalanceOfArgs struct {
	AccountID string `json:"account_id"`
}

// StorageDepositArgs are the arguments for storage_deposit, which pre-pays
// state rent so an account can hold token state.
type StorageDepositArgs struct {
	AccountID        string `json:"account_id,omitempty"`
	RegistrationOnly bool   `json:"registration_only,omitempty"`
}

// StorageDepositAmount is the deposit attached when registering an account
// with the FT contract, in whole NEAR. More than required is safe: the
// contract refunds the unused remainder.
const StorageDepositAmount = "0.00125"

// validateU128 checks a base-10 unsigned integer string that must fit in
// 128 bits. JSON calls pass U128 values as strings (e.g. "100").
func validateU128(s string) error {
	if s == "" {
		return errors.New("value is required")
	}
	// 2^128-1 has 39 digits.
	if len(s) > 39 {
		return fmt.Errorf("%q exceeds u128 range", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("%q is not a base-10 unsigned integer", s)
		}
	}
	if len(s) > 1 && s[0] == '0' {
		return fmt.Errorf("%q has a leading zero", s)
	}
	return nil
}
