package markdown

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const separator = "---\n"

// RenderFrontmatter serializes meta as a yaml frontmatter block followed by
// the markdown body.
func RenderFrontmatter(meta map[string]any, body string) (string, error) {
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	buf := bytes.Buffer{}
	buf.WriteString(separator)
	buf.Write(raw)
	buf.WriteString(separator)
	buf.WriteString("\n")
	buf.WriteString(body)
	return buf.String(), nil
}
