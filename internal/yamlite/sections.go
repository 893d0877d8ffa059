package yamlite

import "regexp"

var (
	argsHeaderRe = regexp.MustCompile(`^args:\s*$`)
	sectionEndRe = regexp.MustCompile(`^[a-z]+:`)
	itemPrefixRe = regexp.MustCompile(`^\s+-\s+`)
)

// ParseScalars returns only the top-level keys with a non-empty value.
// Lists are never parsed; their lines are skipped.
func ParseScalars(content string) map[string]string {
	out := make(map[string]string)
	for _, raw := range splitLines(content) {
		if l := Classify(raw); l.Kind == TopLevelScalar {
			out[l.Key] = l.Value
		}
	}
	return out
}

// ArgSpec is one declaration from the args section.
type ArgSpec struct {
	Name        string
	Description string
	Required    bool
}

func (a *ArgSpec) set(key, value string) {
	switch key {
	case "name":
		a.Name = value
	case "description":
		a.Description = value
	case "required":
		a.Required = value == "true"
	}
}

// ParseArgs reads only the `args:` section.
//
// The section opens at a line that is exactly `args:` and closes at the next
// line starting with a lowercase key followed by a colon; scanning stops
// there. Inside the section, indented `- ` lines start a new declaration and
// indented `field: value` lines fill it in. Declarations without a name are
// dropped and lines of any other shape are ignored. The result is never nil.
func ParseArgs(content string) []ArgSpec {
	args := []ArgSpec{}
	var cur *ArgSpec
	flush := func() {
		if cur != nil && cur.Name != "" {
			args = append(args, *cur)
		}
		cur = nil
	}

	inArgs := false
	for _, raw := range splitLines(content) {
		l := Classify(raw)
		if l.Kind == Blank || l.Kind == Comment {
			continue
		}
		if argsHeaderRe.MatchString(raw) {
			inArgs = true
			continue
		}
		if !inArgs {
			continue
		}
		if sectionEndRe.MatchString(raw) {
			flush()
			return args
		}

		if itemPrefixRe.MatchString(raw) {
			flush()
			cur = &ArgSpec{}
			if l.Kind == ArrayItemStart {
				cur.set(l.Key, l.Value)
			}
			continue
		}
		if cur != nil && l.Kind == NestedField {
			cur.set(l.Key, l.Value)
		}
	}

	flush()
	return args
}
