// Package keywords ranks the words used in a set of questions and merges them
// with user supplied keywords into the list shown above the board.
package keywords

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

const DefaultLimit = 12

// minLength is the shortest token kept; anything of two characters or fewer
// carries no signal on a board of questions.
const minLength = 3

var punctuation = regexp.MustCompile(`[^\w\s]`)

// spaces maps every Unicode separator, including NBSP and \v, to a plain
// space so punctuation removal cannot join the words around it.
func spaces(r rune) rune {
	if unicode.IsSpace(r) || r == '\ufeff' {
		return ' '
	}
	return r
}

type count struct {
	word string
	n    int
}

// Extract returns at most limit lowercase words ranked by how many times they
// occur across questions. Ties keep the order in which words were first seen.
// A limit of zero or less selects DefaultLimit.
func Extract(questions []string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	counts := make(map[string]*count)
	ordered := make([]*count, 0)

	for _, q := range questions {
		normalized := punctuation.ReplaceAllString(strings.Map(spaces, strings.ToLower(q)), "")
		for _, word := range strings.Fields(normalized) {
			if len(word) < minLength || IsStopWord(word) {
				continue
			}

			if c, ok := counts[word]; ok {
				c.n++
				continue
			}

			c := &count{word: word, n: 1}
			counts[word] = c
			ordered = append(ordered, c)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].n > ordered[j].n
	})

	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	words := make([]string, len(ordered))
	for i, c := range ordered {
		words[i] = c.word
	}
	return words
}
