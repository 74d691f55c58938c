package llm

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// InstructionTemplate holds the instruction block handed to the narrative
// generator as the system message. The file is parsed once at startup; the
// digest identifies the exact wording a running instance was started with.
type InstructionTemplate struct {
	path   string
	tmpl   *template.Template
	digest string
}

// LoadInstructionTemplate reads and parses the template at path. Unknown
// placeholders fail at render time rather than producing "<no value>" text in
// the generated brief.
func LoadInstructionTemplate(path string) (*InstructionTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read instruction template %q: %w", path, err)
	}

	tmpl, err := template.New(filepath.Base(path)).Option("missingkey=error").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse instruction template %q: %w", path, err)
	}

	sum := sha256.Sum256(data)
	return &InstructionTemplate{
		path:   path,
		tmpl:   tmpl,
		digest: hex.EncodeToString(sum[:]),
	}, nil
}

// Render executes the template with the given data.
func (t *InstructionTemplate) Render(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute instruction template %q: %w", t.path, err)
	}
	return buf.String(), nil
}

// Digest returns the sha256 hex digest of the template source.
func (t *InstructionTemplate) Digest() string {
	return t.digest
}
