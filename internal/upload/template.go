package upload

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Paintersrp/qb/internal/board"
)

type document struct {
	Items    []board.Item `json:"items"`
	Keywords []string     `json:"keywords,omitempty"`
}

// TemplateItems are the sample items offered to people preparing their own
// board files.
func TemplateItems() []board.Item {
	return []board.Item{
		{
			ID:       board.StringID("sample-1"),
			Question: "Example Question: How do I format my JSON?",
			Answer:   "Your JSON file should have a root object with an 'items' array. Each item needs an 'id', 'question', and 'answer'.",
		},
		{
			ID:       board.StringID("sample-2"),
			Question: "Can I include multiple paragraphs?",
			Answer:   "Yes, regular text strings are supported. The card will expand to fit the content automatically.",
		},
		{
			ID:       board.StringID("sample-3"),
			Question: "Tell me about a time you solved a problem.",
			Answer:   "Add your answer here. The board automatically extracts keywords from your questions to help you filter them.",
		},
	}
}

// Template renders the sample document in the upload format.
func Template() ([]byte, error) {
	return Marshal(board.Dataset{Items: TemplateItems()})
}

// Marshal renders a dataset in the upload format, so the output of an export
// can be uploaded again unchanged.
func Marshal(ds board.Dataset) ([]byte, error) {
	doc := document{Items: ds.Items}
	if ds.HasKeywords {
		doc.Keywords = ds.Keywords
	}
	if doc.Items == nil {
		doc.Items = []board.Item{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteTemplate writes the sample document to path. An existing file is only
// replaced when overwrite is true.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, os.ErrExist)
		}
	}

	data, err := Template()
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	return os.WriteFile(path, data, 0o644)
}
