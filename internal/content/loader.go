package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// ErrInvalidContent wraps every parse or validation failure.
var ErrInvalidContent = errors.New("invalid site content")

//go:embed site.yaml
var embeddedSite []byte

// Loader reads content files from a filesystem.
type Loader struct {
	fs       afero.Fs
	validate *validator.Validate
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

// NewLoader creates a loader over fs. Pass afero.NewOsFs() for disk files.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{
		fs:       fs,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		markdown: goldmark.New(),
		policy:   bluemonday.UGCPolicy(),
	}
}

// Load reads, validates and renders the content file at path.
func (l *Loader) Load(path string) (*Site, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	return l.Parse(data)
}

// Parse decodes YAML content, validates it and renders the markdown fields.
func (l *Loader) Parse(data []byte) (*Site, error) {
	var site Site
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if err := l.validate.Struct(&site); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	site.About.HTML = make([]string, 0, len(site.About.Paragraphs))
	for _, p := range site.About.Paragraphs {
		html, err := l.RenderMarkdown(p)
		if err != nil {
			return nil, err
		}
		site.About.HTML = append(site.About.HTML, html)
	}
	return &site, nil
}

// RenderMarkdown converts a markdown snippet to sanitised HTML.
func (l *Loader) RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := l.markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return string(l.policy.SanitizeBytes(buf.Bytes())), nil
}

// Embedded returns the content compiled into the binary.
func Embedded() (*Site, error) {
	return NewLoader(afero.NewMemMapFs()).Parse(embeddedSite)
}

// EmbeddedBytes returns the raw embedded content file.
func EmbeddedBytes() []byte {
	return append([]byte(nil), embeddedSite...)
}
