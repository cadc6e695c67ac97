package mcq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoQuestions = "Q: What is 2+2?\nA: 3\nB: 4\nC: 5\nD: 6\nANSWER: B\n" +
	"Q: Capital of France?\nA: Paris\nB: Rome\nANSWER: A"

func TestParse_TwoWellFormedQuestions(t *testing.T) {
	got := Parse(twoQuestions, 5)
	require.Len(t, got, 2)

	assert.Equal(t, Record{
		Question: "What is 2+2?",
		Options:  map[Letter]string{LetterA: "3", LetterB: "4", LetterC: "5", LetterD: "6"},
		Answer:   LetterB,
	}, got[0])
	assert.Equal(t, Record{
		Question: "Capital of France?",
		Options:  map[Letter]string{LetterA: "Paris", LetterB: "Rome"},
		Answer:   LetterA,
	}, got[1])
}

func TestParse_StopsAtCount(t *testing.T) {
	got := Parse(twoQuestions, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "What is 2+2?", got[0].Question)
}

func TestParse_NonPositiveCount(t *testing.T) {
	for _, count := range []int{0, -3} {
		got := Parse(twoQuestions, count)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestParse_DropsSegmentsWithTooFewOptions(t *testing.T) {
	raw := "Q: No options here\nANSWER: A\n" +
		"Q: Only one\nA: lonely\nANSWER: A\n" +
		"Q: Fine\nA: yes\nB: no\n"

	got := Parse(raw, 5)
	require.Len(t, got, 1)
	assert.Equal(t, "Fine", got[0].Question)
	assert.False(t, got[0].HasAnswer())
}

func TestParse_MalformedSegmentsDoNotConsumeCount(t *testing.T) {
	raw := "Q: bad\nA: x\n" +
		"Q: good one\nA: 1\nB: 2\n" +
		"Q: good two\nA: 1\nB: 2\n"

	got := Parse(raw, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "good one", got[0].Question)
	assert.Equal(t, "good two", got[1].Question)
}

func TestParse_DuplicateOptionLastWins(t *testing.T) {
	raw := "Q: Pick\nA: first\nB: other\nA: second\n"

	got := Parse(raw, 1)
	require.Len(t, got, 1)
	assert.Equal(t, map[Letter]string{LetterA: "second", LetterB: "other"}, got[0].Options)
}

func TestParse_DuplicateLettersCountOnce(t *testing.T) {
	raw := "Q: Pick\nA: one\na: two\n"
	assert.Empty(t, Parse(raw, 1))
}

func TestParse_LowercaseOptionLetters(t *testing.T) {
	raw := "Q: Lower\na: alpha\nb: beta\nanswer: b\n"

	got := Parse(raw, 1)
	require.Len(t, got, 1)
	assert.Equal(t, map[Letter]string{LetterA: "alpha", LetterB: "beta"}, got[0].Options)
	assert.Equal(t, LetterB, got[0].Answer)
}

func TestParse_IgnoresPreambleAndNoise(t *testing.T) {
	raw := "Here are your questions:\n\n" +
		"Q: Which gas do plants absorb?\n" +
		"Think carefully.\n" +
		"A: Oxygen\nB: Carbon dioxide\nC: Nitrogen\nD: Helium\n" +
		"E: not an option\n" +
		"ANSWER: B) Carbon dioxide\n"

	got := Parse(raw, 5)
	require.Len(t, got, 1)
	assert.Equal(t, "Which gas do plants absorb?", got[0].Question)
	assert.Len(t, got[0].Options, 4)
	assert.Equal(t, LetterB, got[0].Answer)
}

func TestParse_InvalidAnswerLeavesAnswerUnset(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", "ANSWER:"},
		{"out of range", "ANSWER: E"},
		{"word", "ANSWER: none of the above"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := "Q: q\nA: a\nB: b\n" + tt.line
			got := Parse(raw, 1)
			require.Len(t, got, 1)
			assert.False(t, got[0].HasAnswer())
		})
	}
}

func TestParse_CRLFInput(t *testing.T) {
	raw := strings.ReplaceAll(twoQuestions, "\n", "\r\n")
	got := Parse(raw, 5)
	require.Len(t, got, 2)
	assert.Equal(t, "Capital of France?", got[1].Question)
	assert.Equal(t, "Paris", got[1].Options[LetterA])
}

func TestParse_EmptyAndGarbage(t *testing.T) {
	for _, raw := range []string{"", "   \n\n", "Q:", "Q:\nQ:\n", "no structure at all"} {
		assert.Empty(t, Parse(raw, 3), "input %q", raw)
	}
}

func TestParse_NeverExceedsCount(t *testing.T) {
	var b strings.Builder
	for range 20 {
		b.WriteString("Q: again\nA: x\nB: y\nANSWER: A\n")
	}
	for count := 0; count <= 25; count++ {
		got := Parse(b.String(), count)
		assert.LessOrEqual(t, len(got), count)
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want classifiedLine
	}{
		{"A: Paris", classifiedLine{Kind: lineOption, Letter: LetterA, Text: "Paris"}},
		{"d:x", classifiedLine{Kind: lineOption, Letter: LetterD, Text: "x"}},
		{"A:", classifiedLine{Kind: lineIgnored}},
		{"E: nope", classifiedLine{Kind: lineIgnored}},
		{"ANSWER: c", classifiedLine{Kind: lineAnswer, Letter: LetterC}},
		{"Answer:D", classifiedLine{Kind: lineAnswer, Letter: LetterD}},
		{"ANSWER: Z", classifiedLine{Kind: lineIgnored}},
		{"Explanation: because", classifiedLine{Kind: lineIgnored}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyLine(tt.line))
		})
	}
}
