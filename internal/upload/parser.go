// Package upload validates board documents and turns them into a dataset.
package upload

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/qb/internal/board"
	"github.com/Paintersrp/qb/internal/keywords"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const ReasonDuplicateID = "duplicate item id"

// FormatFromPath picks the decoder for a file name. Anything that is not
// .yaml or .yml is read as JSON with comments allowed.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse validates data and returns the dataset it describes. The whole batch
// is rejected on the first invalid element.
func Parse(data []byte, format Format) (board.Dataset, error) {
	root, err := decode(data, format)
	if err != nil {
		return board.Dataset{}, err
	}

	var (
		rawItems    []any
		rawKeywords any
		hasKeywords bool
	)

	switch v := root.(type) {
	case []any:
		rawItems = v
	case map[string]any:
		items, ok := v["items"].([]any)
		if !ok {
			return board.Dataset{}, schemaError(ReasonMissingItems)
		}
		rawItems = items
		if kw, present := v["keywords"]; present && kw != nil {
			rawKeywords, hasKeywords = kw, true
		}
	default:
		return board.Dataset{}, schemaError(ReasonMissingItems)
	}

	items := make([]board.Item, 0, len(rawItems))
	seen := make(map[board.ID]struct{}, len(rawItems))
	for i, raw := range rawItems {
		item, ok := toItem(raw)
		if !ok {
			return board.Dataset{}, &SchemaError{Reason: ReasonItemFields, Index: i}
		}
		if _, dup := seen[item.ID]; dup {
			return board.Dataset{}, &SchemaError{Reason: ReasonDuplicateID, Index: i}
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}

	ds := board.Dataset{Items: items}
	if hasKeywords {
		words, ok := toStrings(rawKeywords)
		if !ok {
			return board.Dataset{}, schemaError(ReasonKeywordsFormat)
		}
		ds.Keywords = keywords.NormalizeList(words)
		ds.HasKeywords = true
	}

	return ds, nil
}

var utf8BOM = []byte("\xef\xbb\xbf")

func decode(data []byte, format Format) (any, error) {
	var root any
	data = bytes.TrimPrefix(data, utf8BOM)

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, &ParseError{Reason: ReasonNotStructured, Err: err}
		}
		return normalizeYAML(root), nil
	default:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.UseNumber()
		if err := dec.Decode(&root); err != nil {
			return nil, &ParseError{Reason: ReasonNotStructured, Err: err}
		}
		if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
			return nil, &ParseError{Reason: ReasonNotStructured, Err: errors.New("unexpected data after document")}
		}
		return root, nil
	}
}

// normalizeYAML converts map[any]any nodes, which yaml produces for
// non-string keys, into the map[string]any shape used by JSON.
func normalizeYAML(v any) any {
	switch n := v.(type) {
	case map[string]any:
		for k, child := range n {
			n[k] = normalizeYAML(child)
		}
		return n
	case map[any]any:
		out := make(map[string]any, len(n))
		for k, child := range n {
			key, ok := k.(string)
			if !ok {
				continue
			}
			out[key] = normalizeYAML(child)
		}
		return out
	case []any:
		for i, child := range n {
			n[i] = normalizeYAML(child)
		}
		return n
	default:
		return v
	}
}

func toItem(raw any) (board.Item, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return board.Item{}, false
	}

	id, ok := toID(obj["id"])
	if !ok {
		return board.Item{}, false
	}
	question, ok := obj["question"].(string)
	if !ok {
		return board.Item{}, false
	}
	answer, ok := obj["answer"].(string)
	if !ok {
		return board.Item{}, false
	}

	return board.Item{ID: id, Question: question, Answer: answer}, true
}

func toID(raw any) (board.ID, bool) {
	switch v := raw.(type) {
	case string:
		return board.StringID(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return board.IntID(n), true
		}
		f, err := v.Float64()
		if err != nil {
			return board.ID{}, false
		}
		return floatID(f)
	case int:
		return board.IntID(int64(v)), true
	case int64:
		return board.IntID(v), true
	case uint64:
		if v > math.MaxInt64 {
			return board.ID{}, false
		}
		return board.IntID(int64(v)), true
	case float64:
		return floatID(v)
	default:
		return board.ID{}, false
	}
}

func floatID(f float64) (board.ID, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return board.ID{}, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return board.ID{}, false
	}
	return board.IntID(int64(f)), true
}

func toStrings(raw any) ([]string, bool) {
	list, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
