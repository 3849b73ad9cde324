package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alnah/go-katana"
	"github.com/alnah/go-katana/internal/config"
	"github.com/alnah/go-katana/internal/yamlutil"
)

// outputFormat renders a Document into file contents.
type outputFormat struct {
	name   string
	ext    string // extension of written files, with leading dot
	render func(doc *katana.Document) ([]byte, error)
}

// outputFormats maps output format names to renderers.
var outputFormats = map[string]outputFormat{
	"text":  {name: "text", ext: ".txt", render: renderText},
	"lines": {name: "lines", ext: ".txt", render: renderLines},
	"json":  {name: "json", ext: ".json", render: renderJSON},
	"yaml":  {name: "yaml", ext: ".yaml", render: renderYAML},
}

// documentOutput is the structured form of a Document.
type documentOutput struct {
	Paragraphs [][]string `json:"paragraphs" yaml:"paragraphs"`
}

// resolveOutputFormat looks up an output format by name. Empty means text.
func resolveOutputFormat(name string) (outputFormat, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "text"
	}
	if name == "yml" {
		name = "yaml"
	}
	f, ok := outputFormats[name]
	if !ok {
		return outputFormat{}, fmt.Errorf("%w: %q (expected one of: %s)",
			ErrUnknownOutputFormat, name, strings.Join(config.OutputFormats, ", "))
	}
	return f, nil
}

// renderText writes sentences separated by a space and paragraphs by a
// blank line.
func renderText(doc *katana.Document) ([]byte, error) {
	if len(doc.Paragraphs) == 0 {
		return nil, nil
	}
	return []byte(doc.String() + "\n"), nil
}

// renderLines writes one sentence per line and a blank line between paragraphs.
func renderLines(doc *katana.Document) ([]byte, error) {
	var buf bytes.Buffer
	for i, p := range doc.Paragraphs {
		if i > 0 {
			buf.WriteByte('\n')
		}
		for _, s := range p {
			buf.WriteString(s)
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}

// renderJSON writes {"paragraphs": [[...], ...]} indented by two spaces.
func renderJSON(doc *katana.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toOutput(doc)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderYAML writes the paragraphs key as nested sequences.
func renderYAML(doc *katana.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := yamlutil.Encode(&buf, toOutput(doc)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toOutput converts doc, turning nil paragraphs into an empty list.
func toOutput(doc *katana.Document) documentOutput {
	paragraphs := doc.Paragraphs
	if paragraphs == nil {
		paragraphs = [][]string{}
	}
	return documentOutput{Paragraphs: paragraphs}
}
