package board

import (
	"encoding/json"
	"strconv"
)

// ID identifies an item. Upload documents may use either strings or integers,
// and the two forms never compare equal: "1" and 1 are distinct ids.
type ID struct {
	str     string
	num     int64
	numeric bool
}

func StringID(s string) ID { return ID{str: s} }

func IntID(n int64) ID { return ID{num: n, numeric: true} }

func (id ID) IsZero() bool { return id == ID{} }

func (id ID) Numeric() bool { return id.numeric }

func (id ID) String() string {
	if id.numeric {
		return strconv.FormatInt(id.num, 10)
	}
	return id.str
}

// Key is a stable map key that keeps the string/integer distinction.
func (id ID) Key() string {
	if id.numeric {
		return "n:" + strconv.FormatInt(id.num, 10)
	}
	return "s:" + id.str
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(strconv.FormatInt(id.num, 10)), nil
	}
	return json.Marshal(id.str)
}

type Item struct {
	ID       ID     `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Defaults is the dataset shown before anything is uploaded.
func Defaults() []Item {
	return []Item{
		{
			ID:       IntID(1),
			Question: "How does the card expansion work?",
			Answer:   "Move the mouse over a question to see the answer and move it away to close it. Click a card, or press enter on the focused card, to toggle it open and closed.",
		},
		{
			ID:       IntID(2),
			Question: "Can I upload my own questions?",
			Answer:   "Yes. Press `u` and enter a path to a JSON file. The file should be a JSON object containing an `items` array, where each item has an `id`, a `question` and an `answer`.",
		},
		{
			ID:       IntID(3),
			Question: "Can I drive the board from the keyboard?",
			Answer:   "Use the arrow keys to move between cards, enter or space to toggle, the number keys to pick a keyword, `r` to reset the filter and `?` for the full key list.",
		},
		{
			ID:       IntID(4),
			Question: "What about layout on different screens?",
			Answer:   "The layout adapts to the terminal width. It shows 1 column on narrow terminals, 2 on medium ones and 3 on very wide ones.",
		},
		{
			ID:       IntID(5),
			Question: "Is there a strict JSON format?",
			Answer:   "The board expects a JSON document with a root object containing an `items` array, or a bare array of items. Each object needs `id`, `question` and `answer` properties. An optional `keywords` array seeds the custom keywords.",
		},
		{
			ID:       IntID(6),
			Question: "Where are my notes stored?",
			Answer:   "The notepad is saved on every keystroke to a small key-value store under `~/.qb/notes`, so it survives restarts.",
		},
		{
			ID:       IntID(7),
			Question: "Performance with many items?",
			Answer:   "The board recomputes keywords and columns on every change, which stays fast for lists of a few hundred items.",
		},
	}
}
