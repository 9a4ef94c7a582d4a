package catechism

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)

	// Bible verse references like "Rom 5:29", "1 Cor 3:16", "Mt 5:3-12, 14".
	bibleRefPattern = regexp.MustCompile(`\b[1-3]?\s*[A-Za-z]+\s+\d+:\d+(?:-\d+)?(?:,\s*\d+(?:-\d+)?)*\b`)

	// Years between 1000 and 2099, common in council and encyclical citations.
	yearPattern = regexp.MustCompile(`\b(?:1[0-9]{3}|20[0-9]{2})\b`)

	// Bare chapter:verse or decimal fragments that must survive the
	// stray-number sweep below.
	numericRefPattern = regexp.MustCompile(`\b\d+\s*[:.]\d+`)

	strayNumberPattern = regexp.MustCompile(`\b\d+\b`)

	closeParenPattern = regexp.MustCompile(`\s+\)`)
	openParenPattern  = regexp.MustCompile(`\(\s+`)
)

// CleanText normalizes a raw Catechism paragraph for display: whitespace is
// collapsed, standalone footnote and cross-reference numbers are removed,
// and parenthesis spacing is fixed. Bible verse references, years, and
// chapter:verse fragments are kept intact.
func CleanText(text string) string {
	text = whitespacePattern.ReplaceAllString(text, " ")

	// Shelter legitimate numbers behind placeholders so the stray-number
	// sweep cannot touch them. The placeholder digits are flanked by
	// underscores, which are word characters, so \b never matches inside.
	var protected []string
	protect := func(pattern *regexp.Regexp, s string) string {
		return pattern.ReplaceAllStringFunc(s, func(match string) string {
			protected = append(protected, match)

			return fmt.Sprintf("__REF_%d__", len(protected)-1)
		})
	}

	text = protect(bibleRefPattern, text)
	text = protect(yearPattern, text)
	text = protect(numericRefPattern, text)

	text = strayNumberPattern.ReplaceAllString(text, "")

	text = whitespacePattern.ReplaceAllString(text, " ")
	text = closeParenPattern.ReplaceAllString(text, ")")
	text = openParenPattern.ReplaceAllString(text, "(")

	for i, ref := range protected {
		text = strings.Replace(text, fmt.Sprintf("__REF_%d__", i), ref, 1)
	}

	return strings.TrimSpace(text)
}
