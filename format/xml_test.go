package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXML_Extract(t *testing.T) {
	type input struct {
		text string
		tag  string
	}

	type expected struct {
		content string
		found   bool
	}

	tests := []struct {
		name     string
		input    input
		expected expected
	}{
		{
			name:     "single line tag",
			input:    input{text: "<thought>T</thought>", tag: TagThought},
			expected: expected{content: "T", found: true},
		},
		{
			name: "surrounding text is ignored",
			input: input{
				text: "Sure! Here is my plan. <action>get_current_time</action> Waiting now.",
				tag:  TagAction,
			},
			expected: expected{content: "get_current_time", found: true},
		},
		{
			name: "multi-line content is trimmed",
			input: input{
				text: "<final_answer>\n  The file now contains:\nhello\nworld\n</final_answer>",
				tag:  TagFinalAnswer,
			},
			expected: expected{content: "The file now contains:\nhello\nworld", found: true},
		},
		{
			name: "only the first occurrence is used",
			input: input{
				text: "<thought>first</thought><thought>second</thought>",
				tag:  TagThought,
			},
			expected: expected{content: "first", found: true},
		},
		{
			name: "other tags do not interfere",
			input: input{
				text: "<thought>T</thought>\n<action>calculate(\"1+2\")</action>",
				tag:  TagAction,
			},
			expected: expected{content: `calculate("1+2")`, found: true},
		},
		{
			name:     "empty tag is found with empty content",
			input:    input{text: "<final_answer>   </final_answer>", tag: TagFinalAnswer},
			expected: expected{content: "", found: true},
		},
		{
			name:     "missing tag",
			input:    input{text: "I am just talking.", tag: TagAction},
			expected: expected{content: "", found: false},
		},
		{
			name:     "unclosed tag",
			input:    input{text: "<action>get_current_time", tag: TagAction},
			expected: expected{content: "", found: false},
		},
		{
			name:     "tag names are case-sensitive",
			input:    input{text: "<Action>get_current_time</Action>", tag: TagAction},
			expected: expected{content: "", found: false},
		},
		{
			name:     "empty input",
			input:    input{text: "", tag: TagThought},
			expected: expected{content: "", found: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, found := NewXML().Extract(tt.input.text, tt.input.tag)
			assert.Equal(t, tt.expected.found, found)
			assert.Equal(t, tt.expected.content, content)
		})
	}
}

func TestXML_Extract_IndependentOfSurroundings(t *testing.T) {
	prefixes := []string{"", "noise ", "<thought>x</thought>\n", "</action>", "<<<"}
	suffixes := []string{"", " trailing", "\n<final_answer>y</final_answer>", "<action>"}

	f := NewXML()
	for _, prefix := range prefixes {
		for _, suffix := range suffixes {
			text := prefix + "<action>  read_file(\"a.txt\")\n</action>" + suffix
			content, found := f.Extract(text, TagAction)
			assert.True(t, found, "text: %q", text)
			assert.Equal(t, `read_file("a.txt")`, content, "text: %q", text)
		}
	}
}

func TestXML_Extract_TagNameIsLiteral(t *testing.T) {
	content, found := NewXML().Extract("<a.b>x</a.b><axb>y</axb>", "a.b")
	assert.True(t, found)
	assert.Equal(t, "x", content)

	_, found = NewXML().Extract("<axb>y</axb>", "a.b")
	assert.False(t, found)
}

func TestXML_FormatSection(t *testing.T) {
	f := NewXML()

	assert.Equal(t, "<question>What time is it?</question>", f.FormatSection(TagQuestion, "What time is it?"))
	assert.Equal(t, "<observation>Error: invalid action format</observation>",
		f.FormatSection(TagObservation, "Error: invalid action format"))
}

func TestExtract_SharedInstance(t *testing.T) {
	content, found := Extract("<thought>T2</thought>", TagThought)
	assert.True(t, found)
	assert.Equal(t, "T2", content)
}
