package setting

import (
	"strings"
)

const (
	KeyProjectHome = "PROJECT_HOME"
	KeyBuildDir    = "BUILD_DIR"
)

// Setting one `KEY=VALUE` line of the settings file
type Setting struct {
	Key   string
	Value string
}

// Settings entries in file order. Duplicate keys are allowed; FindValue resolves them by first match.
type Settings []Setting

// Template entries written by the generate command
func Template() Settings {
	return Settings{
		{Key: KeyProjectHome, Value: "."},
		{Key: KeyBuildDir, Value: "build"},
	}
}

// ParseLine splits a line of the form `key [ws]* = [ws]* value`.
// The value is the rest of the line with surrounding whitespace removed.
func ParseLine(line string) (Setting, bool) {
	line = strings.TrimRight(line, "\r\n")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Setting{}, false
	}

	idx := strings.Index(trimmed, "=")
	if idx <= 0 {
		return Setting{}, false
	}

	key := strings.TrimRight(trimmed[:idx], " \t")
	if key == "" || strings.ContainsAny(key, " \t") {
		return Setting{}, false
	}

	return Setting{
		Key:   key,
		Value: strings.TrimSpace(trimmed[idx+1:]),
	}, true
}

// Line renders the entry as it is stored on disk.
func (s Setting) Line() string {
	return s.Key + "=" + s.Value
}

// FindValue returns the value of the first entry whose key matches, or "" when none does.
// A missing key and an empty value are indistinguishable here; use Lookup to tell them apart.
func (s Settings) FindValue(key string) string {
	value, _ := s.Lookup(key)
	return value
}

// Lookup is FindValue that also reports whether the key was present.
func (s Settings) Lookup(key string) (string, bool) {
	for _, entry := range s {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return "", false
}

// Render the file content, one line per entry.
func (s Settings) Render() string {
	var sb strings.Builder
	for _, entry := range s {
		sb.WriteString(entry.Line())
		sb.WriteString("\n")
	}
	return sb.String()
}
