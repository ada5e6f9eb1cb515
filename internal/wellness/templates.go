package wellness

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ProblemTemplate is a starter topic offered on the landing page. ChatPrompt
// is sent to the chat pipeline when the user picks it.
type ProblemTemplate struct {
	Title      string `yaml:"title" json:"title"`
	Emoji      string `yaml:"emoji" json:"emoji"`
	Problem    string `yaml:"problem" json:"problem"`
	Solution   string `yaml:"solution" json:"solution"`
	ChatPrompt string `yaml:"chat_prompt" json:"chat_prompt"`
}

//go:embed data/templates.yaml
var templatesYAML []byte

type templateCatalogue struct {
	Templates []ProblemTemplate `yaml:"templates"`
}

func ParseTemplates(raw []byte) ([]ProblemTemplate, error) {
	var catalogue templateCatalogue
	if err := yaml.Unmarshal(raw, &catalogue); err != nil {
		return nil, fmt.Errorf("decode problem templates: %w", err)
	}
	for idx, item := range catalogue.Templates {
		if item.Title == "" || item.ChatPrompt == "" {
			return nil, fmt.Errorf("problem template %d: title and chat_prompt are required", idx)
		}
	}
	return catalogue.Templates, nil
}

// DefaultTemplates returns the embedded catalogue.
func DefaultTemplates() ([]ProblemTemplate, error) {
	return ParseTemplates(templatesYAML)
}
