package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/strengthmap/internal/assessment"
)

const schemaURL = "schema://assessments.json"

// documentSchema describes the stored assessment list. Extra properties are
// allowed so records written by other clients survive a round trip.
var documentSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"id", "date", "strengths"},
		"properties": map[string]any{
			"id":   map[string]any{"type": "string", "minLength": 1},
			"date": map[string]any{"type": "string", "minLength": 1},
			"answers": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"questionId", "value"},
					"properties": map[string]any{
						"questionId": map[string]any{"type": "string"},
						"value":      map[string]any{"type": "integer"},
					},
				},
			},
			"strengths": map[string]any{
				"type":     "array",
				"maxItems": 5,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"title", "score"},
					"properties": map[string]any{
						"id":          map[string]any{"type": "string"},
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"category":    map[string]any{"type": "string"},
						"score":       map[string]any{"type": "number", "minimum": 0, "maximum": 100},
					},
				},
			},
			"values": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	},
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func documentValidator() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The compiler wants a parsed JSON value, not Go literals.
		raw, err := json.Marshal(documentSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// DecodeResults parses a serialized assessment list. Empty input decodes to
// an empty list. Documents that are not valid JSON or do not match the
// stored shape yield an error wrapping ErrCorruptHistory.
func DecodeResults(data []byte) ([]assessment.Result, error) {
	if len(data) == 0 {
		return []assessment.Result{}, nil
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", ErrCorruptHistory, err)
	}

	schema, err := documentValidator()
	if err != nil {
		return nil, fmt.Errorf("compile history schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptHistory, err)
	}

	var results []assessment.Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptHistory, err)
	}
	for i := range results {
		normalize(&results[i])
	}
	return results, nil
}

// EncodeResults serializes results in the stored list format.
func EncodeResults(results []assessment.Result) ([]byte, error) {
	out := make([]assessment.Result, len(results))
	for i, r := range results {
		normalize(&r)
		out[i] = r
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode assessments: %w", err)
	}
	return data, nil
}

// normalize replaces nil slices so the encoded form always carries arrays.
func normalize(r *assessment.Result) {
	if r.Answers == nil {
		r.Answers = []assessment.Answer{}
	}
	if r.Strengths == nil {
		r.Strengths = []assessment.StrengthItem{}
	}
	if r.Values == nil {
		r.Values = []string{}
	}
}
