// Package placeholders provides {{NAME}} token extraction and substitution
// for prompt text.
package placeholders

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// placeholderRegex matches {{NAME}} tokens; NAME is letters, digits, underscore.
	placeholderRegex = regexp.MustCompile(`\{\{(\w+)\}\}`)
)

// Extract extracts all unique placeholder names from a string, in order of
// first appearance.
func Extract(s string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(s, -1)
	seen := make(map[string]bool)
	result := []string{}

	for _, m := range matches {
		name := m[1]
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}

	return result
}

// Substitute replaces each {{NAME}} token that has an entry in values.
// Tokens without a value are left exactly as written. Replacement text is
// never scanned again, so values containing tokens are inserted literally.
func Substitute(s string, values map[string]string) string {
	return placeholderRegex.ReplaceAllStringFunc(s, func(token string) string {
		name := token[2 : len(token)-2]
		if v, ok := values[name]; ok {
			return v
		}
		return token
	})
}

// Missing returns the placeholder names in s that have no entry in values.
func Missing(s string, values map[string]string) []string {
	var missing []string
	for _, name := range Extract(s) {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// SubstituteStrict is Substitute, but fails with a *MissingError when any
// placeholder would be left unresolved.
func SubstituteStrict(s string, values map[string]string) (string, error) {
	if missing := Missing(s, values); len(missing) > 0 {
		return "", &MissingError{MissingNames: missing}
	}
	return Substitute(s, values), nil
}

// MissingError is returned when placeholders are missing values.
type MissingError struct {
	MissingNames []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing placeholders: %s", strings.Join(e.MissingNames, ", "))
}

// Missing returns the list of missing placeholder names.
func (e *MissingError) Missing() []string {
	return e.MissingNames
}
