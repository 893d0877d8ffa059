// Package yamlite reads the restricted YAML dialect used by workflow.yaml.
//
// The dialect has top-level scalars (`key: value`) and, under a key with an
// empty value, one indented list of flat objects whose fields are strings or
// booleans. Anything else (nested maps, flow collections, block scalars,
// anchors) is not an error; such lines simply do not match and are skipped.
package yamlite

import (
	"regexp"
	"strings"
)

// Kind classifies a single line of input.
type Kind int

const (
	// Unrecognized lines match none of the known shapes and are ignored.
	Unrecognized Kind = iota
	// Blank lines are empty or whitespace only.
	Blank
	// Comment lines start with '#' after leading whitespace.
	Comment
	// TopLevelScalar is `key: value` at column zero with a non-empty value.
	TopLevelScalar
	// TopLevelEmptyKey is `key:` at column zero with nothing after the colon.
	TopLevelEmptyKey
	// ArrayItemStart is an indented `- key: value` line.
	ArrayItemStart
	// NestedField is an indented `key: value` line.
	NestedField
)

var kindNames = [...]string{
	Unrecognized:     "unrecognized",
	Blank:            "blank",
	Comment:          "comment",
	TopLevelScalar:   "top-level scalar",
	TopLevelEmptyKey: "top-level empty key",
	ArrayItemStart:   "array item start",
	NestedField:      "nested field",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

var (
	topLevelRe  = regexp.MustCompile(`^(\w+):\s*(.*)$`)
	itemStartRe = regexp.MustCompile(`^(\s+)-\s+(\w+):\s*(.*)$`)
	nestedRe    = regexp.MustCompile(`^(\s+)(\w+):\s*(.*)$`)
)

// Line is one classified input line.
type Line struct {
	Kind Kind
	// Key is the field or top-level key, empty for blank, comment and
	// unrecognized lines.
	Key string
	// Value is the trimmed value with one matching pair of quotes removed.
	Value string
}

// Classify tokenizes a single line (without its trailing newline).
func Classify(raw string) Line {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Line{Kind: Blank}
	}
	if strings.HasPrefix(trimmed, "#") {
		return Line{Kind: Comment}
	}

	if m := topLevelRe.FindStringSubmatch(raw); m != nil {
		if strings.TrimSpace(m[2]) == "" {
			return Line{Kind: TopLevelEmptyKey, Key: m[1]}
		}
		return Line{Kind: TopLevelScalar, Key: m[1], Value: Unquote(m[2])}
	}
	if m := itemStartRe.FindStringSubmatch(raw); m != nil {
		return Line{Kind: ArrayItemStart, Key: m[2], Value: Unquote(m[3])}
	}
	if m := nestedRe.FindStringSubmatch(raw); m != nil {
		return Line{Kind: NestedField, Key: m[2], Value: Unquote(m[3])}
	}
	return Line{Kind: Unrecognized}
}

// Unquote trims v and strips one symmetric pair of surrounding quotes.
// Inside single quotes a doubled '' stands for one quote; other quotes and
// escape sequences are left alone.
func Unquote(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		inner := v[1 : len(v)-1]
		if v[0] == '\'' {
			inner = strings.ReplaceAll(inner, "''", "'")
		}
		v = strings.TrimSpace(inner)
	}
	return v
}

// splitLines splits content on '\n', dropping a trailing '\r' from each line.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
