package workdir

import (
	"bytes"
	"encoding/json"

	"github.com/BurntSushi/toml"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/vbp1/workdir/internal/util/fs"
)

// Map keys are sorted so repeated writes of the same value are byte-identical.
// Output is compact; WriteJSON indents it afterwards.
var jsonAPI = jsoniter.Config{
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	CaseSensitive:          true,
}.Froze()

// WriteBytes writes data to name inside the directory, replacing any
// existing file. name is joined to the directory path as is; parent
// subdirectories are not created.
func (d *Dir) WriteBytes(name string, data []byte) error {
	p := d.Join(name)
	if err := fs.WriteFile(p, data); err != nil {
		return &IOError{Op: "write", Path: p, Err: err}
	}
	return nil
}

// WriteString writes text to name inside the directory.
func (d *Dir) WriteString(name, text string) error {
	return d.WriteBytes(name, []byte(text))
}

// WriteJSON writes v as indented JSON.
func (d *Dir) WriteJSON(name string, v any) error {
	data, err := jsonAPI.Marshal(v)
	if err != nil {
		return &SerializationError{Format: "json", Name: name, Err: err}
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return &SerializationError{Format: "json", Name: name, Err: err}
	}
	buf.WriteByte('\n')
	return d.WriteBytes(name, buf.Bytes())
}

// WriteTOML writes v as TOML. v must encode to a table (struct or map).
func (d *Dir) WriteTOML(name string, v any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return &SerializationError{Format: "toml", Name: name, Err: err}
	}
	return d.WriteBytes(name, buf.Bytes())
}

// WriteYAML writes v as YAML.
func (d *Dir) WriteYAML(name string, v any) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return &SerializationError{Format: "yaml", Name: name, Err: err}
	}
	if err := enc.Close(); err != nil {
		return &SerializationError{Format: "yaml", Name: name, Err: err}
	}
	return d.WriteBytes(name, buf.Bytes())
}

// WriteGitignore writes the ignore marker, replacing any previous one.
func (d *Dir) WriteGitignore() error {
	return d.WriteString(GitignoreName, GitignoreContent)
}
