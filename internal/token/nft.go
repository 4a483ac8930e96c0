package token

import (
	"errors"
	"fmt"
)

// NFTMetadataSpec is the metadata standard version the NFT contract expects.
const NFTMetadataSpec = "nft-1.0.0"

// Default collection metadata used by the NFT contract's new_default_meta.
const (
	DefaultNFTName   = "Meta Gallery NFT"
	DefaultNFTSymbol = "METAG"
)

// MintDepositAmount is the storage deposit attached to nft_mint, in whole
// NEAR. Covers the minted token's state; the surplus is refunded.
const MintDepositAmount = "0.1"

// NFTContractMetadata mirrors the NFT contract-level metadata standard.
type NFTContractMetadata struct {
	Spec          string  `json:"spec"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Icon          *string `json:"icon,omitempty"`
	BaseURI       *string `json:"base_uri,omitempty"`
	Reference     *string `json:"reference,omitempty"`
	ReferenceHash *string `json:"reference_hash,omitempty"`
}

// DefaultNFTMetadata returns the metadata new_default_meta bakes in.
func DefaultNFTMetadata() NFTContractMetadata {
	return NFTContractMetadata{
		Spec:   NFTMetadataSpec,
		Name:   DefaultNFTName,
		Symbol: DefaultNFTSymbol,
	}
}

// Validate checks contract-level metadata before init.
func (m NFTContractMetadata) Validate() error {
	if m.Spec != NFTMetadataSpec {
		return fmt.Errorf("%w: spec must be %q, got %q", ErrInvalidMetadata, NFTMetadataSpec, m.Spec)
	}
	if m.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMetadata)
	}
	if m.Symbol == "" {
		return fmt.Errorf("%w: symbol is required", ErrInvalidMetadata)
	}
	return nil
}

// NFTInitArgs are the arguments for the NFT contract's initializer. A nil
// Metadata targets new_default_meta.
type NFTInitArgs struct {
	OwnerID  string               `json:"owner_id"`
	Metadata *NFTContractMetadata `json:"metadata,omitempty"`
}

// InitMethod returns the initializer method name for these arguments.
func (a NFTInitArgs) InitMethod() string {
	if a.Metadata == nil {
		return "new_default_meta"
	}
	return "new"
}

// Validate checks the init payload.
func (a NFTInitArgs) Validate() error {
	if a.OwnerID == "" {
		return errors.New("nft init: owner_id is required")
	}
	if a.Metadata != nil {
		return a.Metadata.Validate()
	}
	return nil
}

// TokenMetadata is the per-token metadata attached at mint time.
type TokenMetadata struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Media       *string `json:"media,omitempty"`
	MediaHash   *string `json:"media_hash,omitempty"`
	Copies      *uint64 `json:"copies,omitempty"`
	IssuedAt    *string `json:"issued_at,omitempty"`
	ExpiresAt   *string `json:"expires_at,omitempty"`
	Extra       *string `json:"extra,omitempty"`
	Reference   *string `json:"reference,omitempty"`
}

// NFTMintArgs are the arguments for nft_mint.
type NFTMintArgs struct {
	TokenID       string        `json:"token_id"`
	ReceiverID    string        `json:"receiver_id"`
	TokenMetadata TokenMetadata `json:"token_metadata"`
}

// Validate checks the mint payload.
func (a NFTMintArgs) Validate() error {
	if a.TokenID == "" {
		return errors.New("nft mint: token_id is required")
	}
	if a.ReceiverID == "" {
		return errors.New("nft mint: receiver_id is required")
	}
	return nil
}

// NFTTokenArgs are the arguments for the nft_token view.
type NFTTokenArgs struct {
	TokenID string `json:"token_id"`
}

// TokensForOwnerArgs are the arguments for nft_tokens_for_owner.
type TokensForOwnerArgs struct {
	AccountID string  `json:"account_id"`
	FromIndex *string `json:"from_index,omitempty"` // U128 as string
	Limit     *uint64 `json:"limit,omitempty"`
}

// Str returns a pointer to s, for optional metadata fields.
func Str(s string) *string { return &s }
