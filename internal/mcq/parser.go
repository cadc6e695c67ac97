package mcq

import "strings"

const (
	// questionMarker starts every question in the prompt contract.
	questionMarker = "Q:"

	// answerMarker starts the reference-answer line, matched case-insensitively.
	answerMarker = "ANSWER:"
)

// minOptions is the fewest distinct options a usable record may carry.
const minOptions = 2

// Parse recovers up to count records from raw multi-question model output.
//
// The input is split on lines that begin a new question ("Q:"). Within a
// segment the first non-empty line is the question. Option lines ("A: …")
// and ANSWER lines are folded into the record; anything else is ignored.
// Segments without a question or with fewer than two options are dropped.
// Parsing stops as soon as count records have been produced.
func Parse(raw string, count int) []Record {
	records := make([]Record, 0, max(count, 0))
	if count <= 0 {
		return records
	}

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	for _, segment := range strings.Split(raw, "\n"+questionMarker) {
		rec, ok := parseSegment(segment)
		if !ok {
			continue
		}
		records = append(records, rec)
		if len(records) >= count {
			break
		}
	}
	return records
}

// parseSegment folds the lines of one candidate question into a record.
func parseSegment(segment string) (Record, bool) {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return Record{}, false
	}
	segment = strings.TrimSpace(strings.TrimPrefix(segment, questionMarker))

	lines := nonEmptyLines(segment)
	if len(lines) == 0 {
		return Record{}, false
	}

	b := newRecordBuilder(lines[0])
	for _, ln := range lines[1:] {
		b.add(classifyLine(ln))
	}
	return b.finish()
}

// nonEmptyLines splits s into trimmed lines, dropping blank ones.
func nonEmptyLines(s string) []string {
	var out []string
	for _, ln := range strings.Split(s, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			out = append(out, ln)
		}
	}
	return out
}

// lineKind discriminates the classified body lines of a segment.
type lineKind int

const (
	lineIgnored lineKind = iota
	lineOption
	lineAnswer
)

// classifiedLine is one body line after classification. Letter is set for
// option lines and for answer lines naming a valid letter; Text only for
// option lines.
type classifiedLine struct {
	Kind   lineKind
	Letter Letter
	Text   string
}

// classifyLine decides what a single trimmed body line contributes.
func classifyLine(ln string) classifiedLine {
	// "<letter>:<text>" with at least one character of text.
	if len(ln) >= 3 && ln[1] == ':' {
		if l, ok := ParseLetter(ln[:1]); ok {
			return classifiedLine{
				Kind:   lineOption,
				Letter: l,
				Text:   strings.TrimSpace(ln[2:]),
			}
		}
	}

	if strings.HasPrefix(strings.ToUpper(ln), answerMarker) {
		_, after, _ := strings.Cut(ln, ":")
		ans := strings.ToUpper(strings.TrimSpace(after))
		if ans == "" {
			return classifiedLine{Kind: lineIgnored}
		}
		l, ok := ParseLetter(ans[:1])
		if !ok {
			return classifiedLine{Kind: lineIgnored}
		}
		return classifiedLine{Kind: lineAnswer, Letter: l}
	}

	return classifiedLine{Kind: lineIgnored}
}

// recordBuilder accumulates classified lines; validation happens in finish.
type recordBuilder struct {
	question string
	options  map[Letter]string
	answer   Letter
}

func newRecordBuilder(question string) *recordBuilder {
	return &recordBuilder{
		question: question,
		options:  make(map[Letter]string, len(Letters)),
	}
}

func (b *recordBuilder) add(cl classifiedLine) {
	switch cl.Kind {
	case lineOption:
		// Later duplicates overwrite earlier ones.
		b.options[cl.Letter] = cl.Text
	case lineAnswer:
		b.answer = cl.Letter
	}
}

func (b *recordBuilder) finish() (Record, bool) {
	if b.question == "" || len(b.options) < minOptions {
		return Record{}, false
	}
	return Record{
		Question: b.question,
		Options:  b.options,
		Answer:   b.answer,
	}, true
}
