package cmd

import (
	"fmt"

	"github.com/nearkit/nearctl/internal/account"
	"github.com/nearkit/nearctl/internal/artifact"
	"github.com/nearkit/nearctl/internal/nearcli"
	"github.com/nearkit/nearctl/internal/registry"
	"github.com/nearkit/nearctl/internal/token"
	"github.com/nearkit/nearctl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	nftContract string

	nftInitOwner       string
	nftInitName        string
	nftInitSymbol      string
	nftInitBaseURI     string
	nftInitDefaultMeta bool

	nftMintReceiver    string
	nftMintSigner      string
	nftMintTitle       string
	nftMintDescription string
	nftMintMedia       string
	nftMintCopies      uint64

	nftTokensFrom  string
	nftTokensLimit uint64
)

var nftCmd = &cobra.Command{
	Use:   "nft",
	Short: "Deploy and drive a non-fungible-token contract",
	Long: `Non-fungible-token workflow: deploy the artifact, initialize it, then
mint and inspect tokens.

A typical testnet session:
  nearctl nft deploy res/nft.wasm --contract nft.you.testnet
  nearctl nft init --contract nft.you.testnet --owner you.testnet
  nearctl nft mint gopher-1 --contract nft.you.testnet --receiver you.testnet \
      --title "Gopher #1" --media https://example.com/gopher.png`,
}

var nftDeployCmd = &cobra.Command{
	Use:   "deploy <wasm-file>",
	Short: "Deploy a non-fungible-token artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := account.ValidateID(nftContract); err != nil {
			return err
		}
		info, err := artifact.Validate(args[0])
		if err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Deploying NFT contract to %s...", nftContract))
		spin.Start()
		_, err = newClient().Deploy(cmd.Context(), nftContract, info.Path)
		spin.Stop()
		if err != nil {
			return err
		}

		if err := recordDeployment(nftContract, registry.KindNFT, info.Path, false); err != nil {
			fmt.Println(ui.Warn(fmt.Sprintf("deployed, but registry update failed: %v", err)))
		}
		fmt.Println(ui.Success(fmt.Sprintf("NFT contract deployed to %s", ui.Acct(nftContract))))
		return nil
	},
}

var nftInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a deployed non-fungible-token contract",
	Long: `Call the contract's initializer. With --default-meta the contract's
built-in collection metadata is used (new_default_meta); otherwise the
metadata is assembled from the flags and passed to new.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := account.ValidateID(nftContract); err != nil {
			return err
		}
		if err := account.ValidateID(nftInitOwner); err != nil {
			return err
		}

		initArgs := token.NFTInitArgs{OwnerID: nftInitOwner}
		if !nftInitDefaultMeta {
			meta := token.DefaultNFTMetadata()
			if nftInitName != "" {
				meta.Name = nftInitName
			}
			if nftInitSymbol != "" {
				meta.Symbol = nftInitSymbol
			}
			if nftInitBaseURI != "" {
				meta.BaseURI = token.Str(nftInitBaseURI)
			}
			initArgs.Metadata = &meta
		}
		if err := initArgs.Validate(); err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Initializing %s (%s)...", nftContract, initArgs.InitMethod()))
		spin.Start()
		_, err := newClient().Call(cmd.Context(), nearcli.CallParams{
			Contract: nftContract,
			Method:   initArgs.InitMethod(),
			Args:     initArgs,
			SignerID: nftInitOwner,
		})
		spin.Stop()
		if err != nil {
			return err
		}

		markInitialized(nftContract, initArgs.InitMethod())

		fmt.Println(ui.Success("NFT contract initialized"))
		fmt.Println(ui.KeyValueBlock("NFT Collection", [][2]string{
			{"Contract", nftContract},
			{"Owner", nftInitOwner},
			{"Initializer", initArgs.InitMethod()},
		}))
		return nil
	},
}

var nftMintCmd = &cobra.Command{
	Use:   "mint <token-id>",
	Short: "Mint a token to a receiver",
	Long: `Mint a new token. The attached deposit covers the token's storage;
the contract refunds the unused remainder.

Examples:
  nearctl nft mint gopher-1 --contract nft.you.testnet \
      --receiver you.testnet --title "Gopher #1" \
      --media https://example.com/gopher.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if nftMintReceiver == "" {
			return fmt.Errorf("--receiver is required")
		}
		signer := nftMintSigner
		if signer == "" {
			signer = nftMintReceiver
		}

		var meta token.TokenMetadata
		if nftMintTitle != "" {
			meta.Title = token.Str(nftMintTitle)
		}
		if nftMintDescription != "" {
			meta.Description = token.Str(nftMintDescription)
		}
		if nftMintMedia != "" {
			meta.Media = token.Str(nftMintMedia)
		}
		if cmd.Flags().Changed("copies") {
			meta.Copies = &nftMintCopies
		}

		mint := token.NFTMintArgs{
			TokenID:       args[0],
			ReceiverID:    nftMintReceiver,
			TokenMetadata: meta,
		}
		if err := mint.Validate(); err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Minting %s to %s...", args[0], nftMintReceiver))
		spin.Start()
		_, err := newClient().Call(cmd.Context(), nearcli.CallParams{
			Contract: nftContract,
			Method:   "nft_mint",
			Args:     mint,
			SignerID: signer,
			Deposit:  token.MintDepositAmount,
		})
		spin.Stop()
		if err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Token %s minted to %s", ui.Val(args[0]), ui.Acct(nftMintReceiver))))
		return nil
	},
}

var nftTokenCmd = &cobra.Command{
	Use:   "token <token-id>",
	Short: "Show a token and its metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := newClient().View(cmd.Context(), nftContract, "nft_token",
			token.NFTTokenArgs{TokenID: args[0]})
		if err != nil {
			return err
		}
		fmt.Print(res.Stdout)
		return nil
	},
}

var nftTokensCmd = &cobra.Command{
	Use:   "tokens <owner-id>",
	Short: "List tokens owned by an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := account.ValidateID(args[0]); err != nil {
			return err
		}
		viewArgs := token.TokensForOwnerArgs{AccountID: args[0]}
		if nftTokensFrom != "" {
			viewArgs.FromIndex = token.Str(nftTokensFrom)
		}
		if cmd.Flags().Changed("limit") {
			viewArgs.Limit = &nftTokensLimit
		}

		res, err := newClient().View(cmd.Context(), nftContract, "nft_tokens_for_owner", viewArgs)
		if err != nil {
			return err
		}
		fmt.Print(res.Stdout)
		return nil
	},
}

func init() {
	nftCmd.PersistentFlags().StringVar(&nftContract, "contract", "", "NFT contract account id (required)")
	_ = nftCmd.MarkPersistentFlagRequired("contract")

	nftInitCmd.Flags().StringVar(&nftInitOwner, "owner", "", "collection owner, signs the init (required)")
	nftInitCmd.Flags().StringVar(&nftInitName, "name", "", "collection name")
	nftInitCmd.Flags().StringVar(&nftInitSymbol, "symbol", "", "collection symbol")
	nftInitCmd.Flags().StringVar(&nftInitBaseURI, "base-uri", "", "base URI for token media")
	nftInitCmd.Flags().BoolVar(&nftInitDefaultMeta, "default-meta", false, "use the contract's built-in metadata")
	_ = nftInitCmd.MarkFlagRequired("owner")

	nftMintCmd.Flags().StringVar(&nftMintReceiver, "receiver", "", "account that receives the token (required)")
	nftMintCmd.Flags().StringVar(&nftMintSigner, "signer", "", "account signing the mint (default: the receiver)")
	nftMintCmd.Flags().StringVar(&nftMintTitle, "title", "", "token title")
	nftMintCmd.Flags().StringVar(&nftMintDescription, "description", "", "token description")
	nftMintCmd.Flags().StringVar(&nftMintMedia, "media", "", "token media URL")
	nftMintCmd.Flags().Uint64Var(&nftMintCopies, "copies", 1, "number of copies this metadata covers")
	_ = nftMintCmd.MarkFlagRequired("receiver")

	nftTokensCmd.Flags().StringVar(&nftTokensFrom, "from", "", "pagination offset")
	nftTokensCmd.Flags().Uint64Var(&nftTokensLimit, "limit", 0, "maximum tokens to return")

	nftCmd.AddCommand(nftDeployCmd, nftInitCmd, nftMintCmd, nftTokenCmd, nftTokensCmd)
}
