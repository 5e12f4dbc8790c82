package utils

import "strings"

// MeasureFunc returns the rendered width of a line in pixels (or cells).
type MeasureFunc func(s string) float64

// WrapText breaks textStr into lines no wider than maxWidth.
//
// Lines break at spaces; a single word wider than maxWidth is split by rune.
// Explicit newlines are kept.
func WrapText(textStr string, measure MeasureFunc, maxWidth float64) []string {
	if textStr == "" || measure == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if measure(candidate) <= maxWidth {
				current = candidate
				continue
			}
			if current != "" {
				lines = append(lines, current)
			}
			current = word
			// over-long word: hard split
			for measure(current) > maxWidth && len([]rune(current)) > 1 {
				runes := []rune(current)
				cut := len(runes) - 1
				for cut > 1 && measure(string(runes[:cut])) > maxWidth {
					cut--
				}
				lines = append(lines, string(runes[:cut]))
				current = string(runes[cut:])
			}
		}
		lines = append(lines, current)
	}
	return lines
}
