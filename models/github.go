package models

import (
	"fmt"
	"net/http"

	"github.com/tmc/langchaingo/llms/openai"
)

const (
	// GitHubModelsBaseURL is the base URL for the GitHub Models API.
	// The OpenAI-compatible chat completions endpoint is at
	// {baseURL}/chat/completions.
	GitHubModelsBaseURL = "https://models.github.ai/inference"

	// DefaultGitHubModel uses the publisher/model naming of GitHub Models.
	DefaultGitHubModel = "openai/gpt-4o"
)

// githubHeaderTransport wraps an http.RoundTripper and injects
// GitHub-specific headers into every request.
type githubHeaderTransport struct {
	base http.RoundTripper
}

func (t *githubHeaderTransport) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	return t.base.RoundTrip(req)
}

// NewGitHub creates a chat client backed by the GitHub Models API.
//
// The token must be a GitHub Personal Access Token (fine-grained) with the models:read
// permission. Model names use the publisher/model format, for example "openai/gpt-4.1".
// An empty model selects DefaultGitHubModel.
func NewGitHub(opts OpenAIOptions, extra ...openai.Option) (*LCGClient, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf(
			"github token is required: " +
				"create a fine-grained PAT with models:read " +
				"at https://github.com/settings/personal-access-tokens/new",
		)
	}
	if opts.Model == "" {
		opts.Model = DefaultGitHubModel
	}
	if opts.BaseURL == "" {
		opts.BaseURL = GitHubModelsBaseURL
	}

	// Caller options come after so they can override the transport.
	lcgOpts := append([]openai.Option{
		openai.WithHTTPClient(&githubHeaderTransport{base: http.DefaultTransport}),
	}, extra...)

	return NewOpenAI(opts, lcgOpts...)
}
