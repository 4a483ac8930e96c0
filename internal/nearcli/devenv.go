package nearcli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DevEnvFile is the environment file the dev-deploy flow writes with the
// generated account id.
const DevEnvFile = "neardev/dev-account.env"

// devAccountKey is the variable the dev-deploy flow writes into the file.
const devAccountKey = "CONTRACT_NAME"

// ParseDevEnv parses a KEY=VALUE env file, ignoring blank lines and
// comments. Values may be single- or double-quoted.
func ParseDevEnv(data []byte) (map[string]string, error) {
	vars := make(map[string]string)
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("dev env line %d: missing '=' in %q", i+1, line)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("dev env line %d: empty key", i+1)
		}
		val = strings.TrimSpace(val)
		if len(val) >= 2 {
			if (val[0] == '"' && val[len(val)-1] == '"') || (val[0] == '\'' && val[len(val)-1] == '\'') {
				val = val[1 : len(val)-1]
			}
		}
		vars[key] = val
	}
	return vars, nil
}

// DevAccountID reads the dev-deploy env file under dir and returns the
// generated account id.
func DevAccountID(dir string) (string, error) {
	path := filepath.Join(dir, filepath.FromSlash(DevEnvFile))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading dev account env: %w", err)
	}
	vars, err := ParseDevEnv(data)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	id, ok := vars[devAccountKey]
	if !ok || id == "" {
		return "", fmt.Errorf("%s does not define %s", path, devAccountKey)
	}
	return id, nil
}
