package nearcli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Client exposes the external tool's subcommand surface as typed
// operations. All JSON arguments are marshaled from structs — never
// assembled by string interpolation.
type Client struct {
	runner    Runner
	networkID string
	nodeURL   string
}

// Option configures a Client.
type Option func(*Client)

// WithNetworkID appends --networkId to every invocation.
func WithNetworkID(id string) Option {
	return func(c *Client) { c.networkID = id }
}

// WithNodeURL appends --nodeUrl to every invocation.
func WithNodeURL(url string) Option {
	return func(c *Client) { c.nodeURL = url }
}

// NewClient wraps a Runner with typed operations.
func NewClient(r Runner, opts ...Option) *Client {
	c := &Client{runner: r}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CallParams describes a state-changing contract call.
type CallParams struct {
	Contract     string
	Method       string
	Args         any    // marshaled to JSON; nil means "{}"
	SignerID     string // --accountId
	Gas          string // attached gas units, optional
	Deposit      string // attached deposit in whole NEAR, optional
	DepositYocto string // attached deposit in yoctoNEAR, optional
}

// Call invokes a change method on a contract.
func (c *Client) Call(ctx context.Context, p CallParams) (Result, error) {
	argsJSON, err := marshalArgs(p.Args)
	if err != nil {
		return Result{}, err
	}
	if p.SignerID == "" {
		return Result{}, fmt.Errorf("call %s.%s: signer account is required", p.Contract, p.Method)
	}
	if p.Deposit != "" && p.DepositYocto != "" {
		return Result{}, fmt.Errorf("call %s.%s: deposit and depositYocto are mutually exclusive", p.Contract, p.Method)
	}

	argv := []string{"call", p.Contract, p.Method, argsJSON, "--accountId", p.SignerID}
	if p.Gas != "" {
		argv = append(argv, "--gas", p.Gas)
	}
	if p.Deposit != "" {
		argv = append(argv, "--deposit", p.Deposit)
	}
	if p.DepositYocto != "" {
		argv = append(argv, "--depositYocto", p.DepositYocto)
	}
	return c.run(ctx, argv)
}

// View invokes a read-only method. A nil args value sends "{}".
func (c *Client) View(ctx context.Context, contract, method string, args any) (Result, error) {
	argsJSON, err := marshalArgs(args)
	if err != nil {
		return Result{}, err
	}
	return c.run(ctx, []string{"view", contract, method, argsJSON})
}

// Deploy uploads a contract artifact to an existing account.
func (c *Client) Deploy(ctx context.Context, accountID, wasmPath string) (Result, error) {
	return c.run(ctx, []string{"deploy", "--accountId", accountID, "--wasmFile", wasmPath})
}

// DevDeploy provisions a throwaway dev account and deploys to it. The
// generated account id is recovered afterwards from neardev/dev-account.env.
func (c *Client) DevDeploy(ctx context.Context, wasmPath, helperURL string) (Result, error) {
	argv := []string{"dev-deploy", "--wasmFile", wasmPath}
	if helperURL != "" {
		argv = append(argv, "--helperUrl", helperURL)
	}
	return c.run(ctx, argv)
}

// CreateAccount provisions a new account funded from master.
func (c *Client) CreateAccount(ctx context.Context, id, master, initialBalance string) (Result, error) {
	argv := []string{"create-account", id, "--masterAccount", master}
	if initialBalance != "" {
		argv = append(argv, "--initialBalance", initialBalance)
	}
	return c.run(ctx, argv)
}

// DeleteAccount removes an account, sending the remaining balance to
// beneficiary.
func (c *Client) DeleteAccount(ctx context.Context, id, beneficiary string) (Result, error) {
	return c.run(ctx, []string{"delete", id, beneficiary})
}

// AccountState fetches balance and storage info for an account.
func (c *Client) AccountState(ctx context.Context, id string) (Result, error) {
	return c.run(ctx, []string{"state", id})
}

// Login hands off to the external tool's interactive credential flow.
func (c *Client) Login(ctx context.Context) (Result, error) {
	return c.run(ctx, []string{"login"})
}

func (c *Client) run(ctx context.Context, argv []string) (Result, error) {
	if c.networkID != "" {
		argv = append(argv, "--networkId", c.networkID)
	}
	if c.nodeURL != "" {
		argv = append(argv, "--nodeUrl", c.nodeURL)
	}
	return c.runner.Run(ctx, argv...)
}

func marshalArgs(args any) (string, error) {
	if args == nil {
		return "{}", nil
	}
	if s, ok := args.(string); ok {
		// Pre-encoded JSON from the command line: validate, don't re-encode.
		if !json.Valid([]byte(s)) {
			return "", fmt.Errorf("arguments are not valid JSON: %s", strings.TrimSpace(s))
		}
		return s, nil
	}
	data, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("encoding call arguments: %w", err)
	}
	return string(data), nil
}
