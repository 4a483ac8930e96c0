package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Load reads config from dir (or creates defaults). dir defaults to
// ~/.nearctl.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".nearctl")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.configDir = dir

	if cfg.Binary == "" {
		cfg.Binary = defaultBinary
	}
	if cfg.NetworkID == "" {
		cfg.NetworkID = defaultNetworkID
	}
	if cfg.InitialBal == "" {
		cfg.InitialBal = defaultInitialBal
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// DeploymentsPath returns the path of the deployment registry file.
func (c *Config) DeploymentsPath() string {
	return filepath.Join(c.configDir, deploymentsFile)
}

// DebugLogPath returns the path of the verbose-mode debug log.
func (c *Config) DebugLogPath() string {
	return filepath.Join(c.configDir, debugLogFile)
}

// ResolveNodeURL returns the configured node URL, falling back to the
// network's default endpoint.
func (c *Config) ResolveNodeURL() string {
	if c.NodeURL != "" {
		return c.NodeURL
	}
	return networkDefaults[c.NetworkID].NodeURL
}

// ResolveHelperURL returns the configured helper URL, falling back to the
// network's default.
func (c *Config) ResolveHelperURL() string {
	if c.HelperURL != "" {
		return c.HelperURL
	}
	return networkDefaults[c.NetworkID].HelperURL
}

// SetNetworkID switches networks, rejecting ids that are neither known nor
// explicitly custom-endpoint configured.
func (c *Config) SetNetworkID(id string) error {
	if _, ok := networkDefaults[id]; !ok && c.NodeURL == "" {
		return fmt.Errorf("unknown network %q (known: %v) — set a node URL first for custom networks", id, KnownNetworks())
	}
	c.NetworkID = id
	return nil
}

// KnownNetworks lists networks with built-in endpoint defaults.
func KnownNetworks() []string {
	out := make([]string, 0, len(networkDefaults))
	for id := range networkDefaults {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func defaults(dir string) *Config {
	return &Config{
		NetworkID:  defaultNetworkID,
		Binary:     defaultBinary,
		InitialBal: defaultInitialBal,
		configDir:  dir,
	}
}
