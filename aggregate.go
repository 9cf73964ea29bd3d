package sitechat

import (
	"strings"
	"unicode/utf8"
)

// Limits bounds the aggregated context. Crawl and Documents cap each pool
// before concatenation; zero means the pool is only bounded by Total.
// Total always applies.
type Limits struct {
	Total     int
	Crawl     int
	Documents int
}

// Aggregate concatenates the crawl text and the document texts, crawl text
// first and documents in name order, and cuts the result to at most
// maxLength characters.
func Aggregate(crawlText string, docs DocumentPool, maxLength int) string {
	return AggregateWithLimits(crawlText, docs, Limits{Total: maxLength})
}

// AggregateWithLimits is like Aggregate but applies per-pool caps before the
// overall cap.
func AggregateWithLimits(crawlText string, docs DocumentPool, limits Limits) string {
	docText := docs.Text()
	if limits.Crawl > 0 {
		crawlText = Truncate(crawlText, limits.Crawl)
	}
	if limits.Documents > 0 {
		docText = Truncate(docText, limits.Documents)
	}

	parts := make([]string, 0, 2)
	for _, part := range []string{crawlText, docText} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return Truncate(strings.Join(parts, "\n"), limits.Total)
}

// Truncate keeps the first maxLength characters of s. The cut ignores word
// and sentence boundaries but never splits a multi-byte character.
func Truncate(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	if len(s) <= maxLength {
		return s
	}

	n := 0
	for i := range s {
		if n == maxLength {
			return s[:i]
		}
		n++
	}
	return s
}

// RuneLen returns the length of s in characters.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
