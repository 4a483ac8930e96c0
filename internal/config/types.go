package config

// Config holds all nearctl configuration.
type Config struct {
	NetworkID     string `json:"network_id"`               // "testnet" | "mainnet" | "localnet"
	NodeURL       string `json:"node_url,omitempty"`       // overrides the network default
	HelperURL     string `json:"helper_url,omitempty"`     // dev-deploy account helper
	MasterAccount string `json:"master_account,omitempty"` // funds and owns sub-accounts
	Binary        string `json:"binary"`                   // external tool name or path
	InitialBal    string `json:"initial_balance"`          // default for create-account, whole NEAR

	// internal: config dir path used for Save()
	configDir string
}

// Network is a set of per-network endpoint defaults.
type Network struct {
	NodeURL   string
	HelperURL string
}
