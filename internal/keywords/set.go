package keywords

import "strings"

// Normalize trims and lowercases keyword text. It returns an empty string for
// blank input.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Merge joins derived and custom keywords in that order, drops duplicates and
// removes anything in hidden.
func Merge(derived, custom []string, hidden map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(derived)+len(custom))
	merged := make([]string, 0, len(derived)+len(custom))

	for _, group := range [][]string{derived, custom} {
		for _, word := range group {
			if word == "" {
				continue
			}
			if _, dup := seen[word]; dup {
				continue
			}
			seen[word] = struct{}{}
			if _, isHidden := hidden[word]; isHidden {
				continue
			}
			merged = append(merged, word)
		}
	}

	return merged
}

// NormalizeList normalizes every entry, dropping blanks and duplicates while
// keeping first occurrence order.
func NormalizeList(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = Normalize(w)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
