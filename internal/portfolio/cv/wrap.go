package cv

import "strings"

// wrapText greedily fills lines with whole words up to maxWidth, measured by
// the document's font-metrics function. A single word wider than maxWidth is
// emitted on its own line unbroken; there is no hyphenation.
func wrapText(measure func(string) float64, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		lines   []string
		current = words[0]
	)
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// splitParagraphs splits free text on embedded line breaks, dropping blank
// paragraphs. Each paragraph wraps independently.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}
