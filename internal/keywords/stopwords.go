package keywords

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {},
	"by": {}, "about": {}, "as": {}, "from": {},
	"how": {}, "what": {}, "why": {}, "when": {}, "where": {}, "who": {}, "which": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "it": {}, "its": {},
	"can": {}, "could": {}, "would": {}, "should": {},
	"do": {}, "does": {}, "did": {}, "will": {},
	"questions": {}, "question": {}, "answer": {}, "answers": {}, "item": {}, "items": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "they": {}, "we": {}, "my": {}, "your": {},
	"format": {}, "file": {},
}

// IsStopWord reports whether word is ignored during extraction.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
