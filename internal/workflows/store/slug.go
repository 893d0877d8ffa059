package store

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// slugRegex matches characters that should be replaced with hyphens
	slugRegex = regexp.MustCompile(`[^a-z0-9]+`)
	// multiHyphenRegex matches multiple consecutive hyphens
	multiHyphenRegex = regexp.MustCompile(`-+`)
)

// Slugify converts a title into a directory-friendly workflow id.
// Rules:
// - Lowercase (Unicode aware), accents removed
// - Replace anything outside a-z and 0-9 with hyphens
// - Collapse multiple hyphens
// - Trim leading/trailing hyphens
// - Max length: 50 chars
//
// Examples:
//
//	"Code Review Flow" -> "code-review-flow"
//	"Café: Release #2!" -> "cafe-release-2"
func Slugify(title string) string {
	if title == "" {
		return ""
	}

	result := cases.Lower(language.Und).String(strings.TrimSpace(title))

	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(stripMarks, result); err == nil {
		result = folded
	}

	// Replace non-alphanumeric characters with hyphens
	result = slugRegex.ReplaceAllString(result, "-")

	// Collapse multiple hyphens
	result = multiHyphenRegex.ReplaceAllString(result, "-")

	// Trim leading/trailing hyphens
	result = strings.Trim(result, "-")

	// Truncate to max length
	if len(result) > 50 {
		// Find the last hyphen before 50 chars to avoid cutting a word
		cutoff := 50
		if idx := strings.LastIndex(result[:cutoff], "-"); idx > 0 {
			cutoff = idx
		}
		result = result[:cutoff]
	}

	return result
}

// GenerateUniqueSlug generates a slug from a title, ensuring it doesn't
// collide with existing slugs by adding a numeric suffix if needed.
func GenerateUniqueSlug(title string, existingSlugs []string) string {
	base := Slugify(title)
	if base == "" {
		base = "workflow"
	}

	slug := base
	for i := 1; i <= 100; i++ {
		if !contains(existingSlugs, slug) {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}

	// Fallback: use a timestamp suffix (unlikely to hit this)
	return fmt.Sprintf("%s-%d", base, time.Now().UnixNano())
}

// contains checks if a string exists in a slice.
func contains(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}
