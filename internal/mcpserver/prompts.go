package mcpserver

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"gopkg.in/yaml.v3"
)

//go:embed prompts/*.md
var promptFiles embed.FS

// promptSpec is the YAML frontmatter of an embedded prompt file. Arguments
// declared here become MCP prompt arguments; provided values are appended to
// the prompt as labeled blocks so the instructions stay separate from the
// document under review.
type promptSpec struct {
	Description string `yaml:"description"`
	Arguments   []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Required    bool   `yaml:"required"`
	} `yaml:"arguments"`
}

// registerPrompts registers every embedded markdown prompt.
func (s *Server) registerPrompts() {
	entries, err := promptFiles.ReadDir("prompts")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		content, err := promptFiles.ReadFile("prompts/" + entry.Name())
		if err != nil {
			continue
		}
		spec, body := loadPrompt(content)

		prompt := &mcp.Prompt{
			Name:        strings.TrimSuffix(entry.Name(), ".md"),
			Description: spec.Description,
		}
		for _, a := range spec.Arguments {
			prompt.Arguments = append(prompt.Arguments, &mcp.PromptArgument{
				Name:        a.Name,
				Description: a.Description,
				Required:    a.Required,
			})
		}

		s.server.AddPrompt(prompt, promptHandler(spec, body))
	}
}

// loadPrompt splits a prompt file into its frontmatter spec and body. Files
// without parseable frontmatter become argument-less prompts whose body is
// the whole file.
func loadPrompt(content []byte) (promptSpec, string) {
	var spec promptSpec

	if !bytes.HasPrefix(content, []byte("---\n")) {
		return spec, string(content)
	}
	rest := content[4:]
	end := bytes.Index(rest, []byte("\n---\n"))
	if end == -1 {
		return spec, string(content)
	}
	if err := yaml.Unmarshal(rest[:end], &spec); err != nil {
		return promptSpec{}, string(content)
	}

	body := strings.TrimPrefix(string(rest[end+len("\n---\n"):]), "\n")
	return spec, body
}

// promptHandler serves the prompt body followed by one labeled message per
// provided argument. A missing required argument is a request error.
func promptHandler(spec promptSpec, body string) mcp.PromptHandler {
	return func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		args := map[string]string{}
		if req != nil && req.Params != nil {
			args = req.Params.Arguments
		}

		messages := []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: body},
			},
		}
		for _, a := range spec.Arguments {
			value := args[a.Name]
			if value == "" {
				if a.Required {
					return nil, fmt.Errorf("missing required argument %q", a.Name)
				}
				continue
			}
			messages = append(messages, &mcp.PromptMessage{
				Role:    "user",
				Content: &mcp.TextContent{Text: fmt.Sprintf("%s:\n%s", a.Name, value)},
			})
		}

		return &mcp.GetPromptResult{
			Description: spec.Description,
			Messages:    messages,
		}, nil
	}
}
