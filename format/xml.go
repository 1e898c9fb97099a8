package format

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Tag names of the transcript protocol.
const (
	TagQuestion    = "question"
	TagThought     = "thought"
	TagAction      = "action"
	TagObservation = "observation"
	TagFinalAnswer = "final_answer"
)

// XML uses XML-style tags to delimit sections.
//
// Example model output:
//
//	<thought>
//	I need to know the time first.
//	</thought>
//	<action>get_current_time</action>
//
// XML is safe for concurrent use. Compiled patterns are cached per tag name.
type XML struct {
	patterns sync.Map // tag name -> *regexp.Regexp
}

// NewXML creates a new XML format.
func NewXML() *XML {
	return &XML{}
}

// Extract returns the trimmed content of the first <tag>...</tag> in text.
// The second return value is false when the tag does not occur.
func (f *XML) Extract(text, tag string) (string, bool) {
	match := f.pattern(tag).FindStringSubmatch(text)
	if len(match) < 2 {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

// FormatSection wraps content in the given tag without adding whitespace.
func (f *XML) FormatSection(tag, content string) string {
	return fmt.Sprintf("<%s>%s</%s>", tag, content, tag)
}

// pattern returns the cached matcher for tag, compiling it on first use.
func (f *XML) pattern(tag string) *regexp.Regexp {
	if re, ok := f.patterns.Load(tag); ok {
		return re.(*regexp.Regexp)
	}

	// (?s) makes . match newlines; the lazy quantifier stops at the first closing tag
	quoted := regexp.QuoteMeta(tag)
	re := regexp.MustCompile(fmt.Sprintf(`(?s)<%s>(.*?)</%s>`, quoted, quoted))
	actual, _ := f.patterns.LoadOrStore(tag, re)
	return actual.(*regexp.Regexp)
}

var defaultXML = NewXML()

// Extract is a shorthand for NewXML().Extract using a shared instance.
func Extract(text, tag string) (string, bool) {
	return defaultXML.Extract(text, tag)
}
