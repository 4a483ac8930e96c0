package config

const (
	defaultNetworkID  = "testnet"
	defaultBinary     = "near"
	defaultInitialBal = "10" // whole NEAR granted to new sub-accounts

	configFile      = "config.json"
	deploymentsFile = "deployments.json"
	debugLogFile    = "nearctl.log"
)

// Known network ids and their default node/helper endpoints.
var networkDefaults = map[string]Network{
	"testnet": {
		NodeURL:   "https://rpc.testnet.near.org",
		HelperURL: "https://helper.testnet.near.org",
	},
	"mainnet": {
		NodeURL:   "https://rpc.mainnet.near.org",
		HelperURL: "https://helper.mainnet.near.org",
	},
	"localnet": {
		NodeURL: "http://127.0.0.1:3030",
	},
}
