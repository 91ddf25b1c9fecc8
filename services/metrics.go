package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	markdownControlChars = regexp.MustCompile("[#*_`\\[\\]()]")

	// The three citation styles accepted by the engine. A citation matching
	// more than one style is counted once per style; consumers rely on this
	// overlap.
	citationBracketed     = regexp.MustCompile(`\[@[^\]\s]+\]`)
	citationParenthetical = regexp.MustCompile(`\([A-ZÀ-Ü][^()\d]*,\s*\d{4}[a-z]?\)`)
	citationNumbered      = regexp.MustCompile(`\[\d{1,3}(?:\s*[,;-]\s*\d{1,3})*\]`)

	citationYear = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
)

// CountWords strips markdown control characters and counts whitespace-separated
// tokens.
func CountWords(text string) int {
	cleaned := markdownControlChars.ReplaceAllString(text, "")
	return len(strings.Fields(cleaned))
}

// CountCitations sums the match counts of the three citation styles over the
// text.
func CountCitations(text string) int {
	count := len(citationBracketed.FindAllString(text, -1))
	count += len(citationParenthetical.FindAllString(text, -1))
	count += len(citationNumbered.FindAllString(text, -1))
	return count
}

// ExtractCitationYears collects every four-digit year between 1900 and 2099,
// deduplicated and sorted most recent first. Matching requires word
// boundaries, so a year embedded in a citation key like [@silva2023] is not
// extracted; like the per-style overlap above, consumers rely on this.
func ExtractCitationYears(text string) []int {
	seen := make(map[int]bool)
	var years []int
	for _, match := range citationYear.FindAllString(text, -1) {
		year, err := strconv.Atoi(match)
		if err != nil {
			continue
		}
		if !seen[year] {
			seen[year] = true
			years = append(years, year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
