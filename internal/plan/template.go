package plan

import (
	"fmt"
	"strings"
)

// Render replaces {{var}} placeholders with vars values. A missing variable
// or malformed placeholder is an error so a half-expanded account id never
// reaches the network.
func Render(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", fmt.Errorf("unclosed placeholder in %q", input)
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", fmt.Errorf("empty placeholder in %q", input)
		}

		value, ok := vars[key]
		if !ok {
			return "", fmt.Errorf("missing variable %q", key)
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}
