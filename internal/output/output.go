// Package output reads and writes the JSON document produced by a
// generation run.
package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/lectern/internal/mcq"
	"github.com/abhisek/lectern/internal/pipeline"
)

// Document is the persisted form of a pipeline.Result.
type Document struct {
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
	MCQs     []MCQ    `json:"mcqs"`
	Warnings []string `json:"warnings"`
}

// MCQ is one persisted question. Answer is null when the model gave no
// usable answer line.
type MCQ struct {
	Question string            `json:"question"`
	Options  map[string]string `json:"options"`
	Answer   *string           `json:"answer"`
}

// FromResult converts a pipeline result into a document.
func FromResult(res pipeline.Result) Document {
	doc := Document{
		Summary:  res.Summary,
		Keywords: nonNil(res.Keywords),
		MCQs:     make([]MCQ, 0, len(res.MCQs)),
		Warnings: nonNil(res.Warnings),
	}
	for _, rec := range res.MCQs {
		q := MCQ{
			Question: rec.Question,
			Options:  make(map[string]string, len(rec.Options)),
		}
		for l, text := range rec.Options {
			q.Options[string(l)] = text
		}
		if rec.HasAnswer() {
			ans := string(rec.Answer)
			q.Answer = &ans
		}
		doc.MCQs = append(doc.MCQs, q)
	}
	return doc
}

// Records converts the document's questions back into parser records.
// Option keys and answers are normalized to uppercase letters; when both
// "A" and "a" are present the uppercase key wins. Keys outside A-D and
// unrecognized answers are dropped.
func (d Document) Records() []mcq.Record {
	out := make([]mcq.Record, 0, len(d.MCQs))
	for _, q := range d.MCQs {
		rec := mcq.Record{
			Question: q.Question,
			Options:  make(map[mcq.Letter]string, len(q.Options)),
		}
		for _, l := range mcq.Letters {
			if text, ok := q.Options[string(l)]; ok {
				rec.Options[l] = text
			} else if text, ok := q.Options[strings.ToLower(string(l))]; ok {
				rec.Options[l] = text
			}
		}
		if q.Answer != nil {
			if l, ok := mcq.ParseLetter(*q.Answer); ok {
				rec.Answer = l
			}
		}
		out = append(out, rec)
	}
	return out
}

// Marshal encodes doc as two-space indented JSON without HTML escaping.
func Marshal(doc Document) ([]byte, error) {
	doc.Keywords = nonNil(doc.Keywords)
	doc.Warnings = nonNil(doc.Warnings)
	if doc.MCQs == nil {
		doc.MCQs = []MCQ{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	return buf.Bytes(), nil
}

// Write saves doc to path.
func Write(path string, doc Document) error {
	b, err := Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Load reads a document from path and validates it against the output
// schema before decoding.
func Load(path string) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read output: %w", err)
	}
	return Parse(b)
}

// Parse validates and decodes a document.
func Parse(b []byte) (Document, error) {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return Document{}, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return Document{}, err
	}
	if err := sch.Validate(parsed); err != nil {
		return Document{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return Document{}, fmt.Errorf("decode output: %w", err)
	}
	return doc, nil
}

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://lectern/output.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse output schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	sch, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile output schema: %w", err)
	}
	return sch, nil
})

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
