package loader

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the prefix of caret environment variables.
const DefaultEnvPrefix = "CARET_"

// EnvLoader loads configuration from environment variables named
// <PREFIX><SECTION>_<KEY>, such as CARET_EDITOR_HISTORY_LIMIT for
// editor.history_limit.
type EnvLoader struct {
	prefix  string
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "CARET_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// NewEnvLoaderWithEnviron creates a loader reading from a fixed
// environment, in os.Environ format.
func NewEnvLoaderWithEnviron(prefix string, environ []string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		environ: func() []string { return environ },
	}
}

// Load reads prefixed environment variables and returns a configuration
// map. Variables without a key part are skipped.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		section, key, ok := l.envToPath(name)
		if !ok {
			continue
		}
		setByPath(config, section, key, parseValue(value))
	}

	return config, nil
}

// envToPath converts CARET_VIEW_SCROLL_MARGIN_CHARS to view and
// scroll_margin_chars.
func (l *EnvLoader) envToPath(env string) (section, key string, ok bool) {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, key, ok = strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return "", "", false
	}
	return section, key, true
}

// parseValue attempts to parse the string value into an appropriate type.
// Durations such as "2s" stay strings; the config decoder parses them.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	// Only with a decimal point, so integers stay integers.
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	return s
}

func setByPath(data map[string]any, section, key string, value any) {
	sub, ok := data[section].(map[string]any)
	if !ok {
		sub = make(map[string]any)
		data[section] = sub
	}
	sub[key] = value
}
