// Package format extracts and writes the XML-like tags of the agent's transcript protocol.
//
// # Overview
//
// The model answers in free-form text that contains tags such as <thought>, <action> and
// <final_answer>. The agent writes <question> and <observation> tags back. [XML] handles
// both directions:
//
//  1. Extract() - Pulls the content of the first occurrence of a tag out of a block of text
//  2. FormatSection() - Wraps content in a tag for the transcript
//
// # Example Usage
//
//	f := format.NewXML()
//
//	thought, ok := f.Extract(response, format.TagThought)
//	if ok {
//	    fmt.Println("model is thinking:", thought)
//	}
//
//	msg := f.FormatSection(format.TagObservation, "42")
//	// msg == "<observation>42</observation>"
//
// # Matching Rules
//
// Tag names are matched case-sensitively. The match is non-greedy and spans newlines, so the
// captured content may be multi-line; it is returned with surrounding whitespace trimmed. Only the
// first occurrence of a tag is considered. A missing tag is a normal outcome, not an error.
package format
