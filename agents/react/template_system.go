package react

import (
	"bytes"
	_ "embed"
	"runtime"
	"text/template"

	"github.com/rodrigo1987mza/reactagent"
)

//go:embed template_system.tmpl
var reactSystemTemplateContent string

// DefaultReActSystemTemplate is the default template for the system prompt.
// It explains the tag protocol and turn-taking rules, lists the tools, and ends with
// environment metadata.
//
// Users can replace this template via Agent.WithSystemTemplate().
var DefaultReActSystemTemplate = template.Must(
	template.New("react_system").Parse(reactSystemTemplateContent),
)

// Environment is static metadata appended to the system prompt.
type Environment struct {
	// OperatingSystem is reported to the model as "Operating System: <value>".
	OperatingSystem string

	// Extra lines are appended verbatim after the operating system line.
	Extra []string
}

// DefaultEnvironment describes the host the agent runs on.
func DefaultEnvironment() Environment {
	return Environment{OperatingSystem: runtime.GOOS}
}

// ToolInfo is the subset of a tool exposed to templates.
type ToolInfo struct {
	Name        string
	Description string
}

// SystemPromptData contains the data passed to the system template.
type SystemPromptData struct {
	// Tools lists every registered tool in registration order.
	Tools []ToolInfo

	Environment Environment
}

// BuildSystemPrompt renders tmpl for the given tools and environment. It has no side effects.
func BuildSystemPrompt(
	tmpl *template.Template,
	tools []reactagent.Tool,
	env Environment,
) (string, error) {
	data := SystemPromptData{
		Tools:       make([]ToolInfo, 0, len(tools)),
		Environment: env,
	}
	for _, tool := range tools {
		data.Tools = append(data.Tools, ToolInfo{Name: tool.Name(), Description: tool.Description()})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
