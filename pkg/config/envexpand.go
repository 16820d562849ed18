package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go template
// syntax ({{.VAR_NAME}}). Plain $ is left untouched so connection strings,
// passwords, and regex patterns survive expansion.
//
// Examples:
//   - {{.GOOGLE_API_KEY}} → value of GOOGLE_API_KEY
//   - {{.DB_HOST}}:{{.DB_PORT}} → hostname:port with both variables expanded
//
// Missing variables expand to empty string; validation catches required
// fields that end up empty. Malformed templates pass the original bytes
// through so the YAML parser can produce a clearer error.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		// Split on the first = only; values may contain = themselves.
		if idx := strings.IndexByte(env, '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}

	return buf.Bytes()
}
