package skills

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

var nameRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// frontmatter is the typed schema for the SKILL.md metadata block.
// Unknown keys are tolerated; known keys are type-checked.
type frontmatter struct {
	Name          string            `mapstructure:"name"`
	Description   string            `mapstructure:"description"`
	License       string            `mapstructure:"license"`
	Compatibility string            `mapstructure:"compatibility"`
	Metadata      map[string]string `mapstructure:"metadata"`
	AllowedTools  string            `mapstructure:"allowed-tools"`
}

// Parse turns the contents of one SKILL.md into a validated Skill.
// It is a pure transform: no I/O happens here. Failures are reported
// as *StructuralError or *FieldError.
func Parse(content []byte, path string, source Source) (*Skill, error) {
	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, &StructuralError{Path: path, Err: err}
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, &StructuralError{Path: path}
	}

	var fm frontmatter
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &fm,
	})
	if err != nil {
		return nil, &StructuralError{Path: path, Err: err}
	}
	if err := decoder.Decode(metaData); err != nil {
		return nil, &FieldError{
			Path:   path,
			Field:  fieldFromDecodeError(err),
			Reason: "unexpected type",
		}
	}

	if err := validateName(fm.Name, path); err != nil {
		return nil, err
	}
	if fm.Description == "" {
		return nil, &FieldError{Path: path, Field: "description", Reason: "required"}
	}
	if utf8.RuneCountInString(fm.Description) > maxDescriptionLength {
		return nil, &FieldError{Path: path, Field: "description", Reason: "exceeds 1024 characters"}
	}

	return &Skill{
		Name:          fm.Name,
		Description:   fm.Description,
		Source:        source,
		Directory:     filepath.Dir(path),
		Path:          path,
		License:       fm.License,
		Compatibility: fm.Compatibility,
		Metadata:      fm.Metadata,
		AllowedTools:  fm.AllowedTools,
	}, nil
}

func validateName(name, path string) error {
	if name == "" {
		return &FieldError{Path: path, Field: "name", Reason: "required"}
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return &FieldError{Path: path, Field: "name", Reason: "exceeds 64 characters"}
	}
	if !nameRe.MatchString(name) {
		return &FieldError{Path: path, Field: "name", Reason: "must be lowercase alphanumeric with single hyphens"}
	}
	return nil
}

// mapstructure reports the struct field namespace; translate it back to
// the frontmatter key so diagnostics name what the skill author wrote.
var fieldNames = map[string]string{
	"name":          "name",
	"description":   "description",
	"license":       "license",
	"compatibility": "compatibility",
	"metadata":      "metadata",
	"allowedtools":  "allowed-tools",
}

func fieldFromDecodeError(err error) string {
	msg := err.Error()
	start := strings.Index(msg, "'")
	if start == -1 {
		return "frontmatter"
	}
	end := strings.Index(msg[start+1:], "'")
	if end == -1 {
		return "frontmatter"
	}

	field := msg[start+1 : start+1+end]
	if idx := strings.Index(field, "["); idx != -1 {
		field = field[:idx]
	}
	if key, ok := fieldNames[strings.ToLower(field)]; ok {
		return key
	}
	return strings.ToLower(field)
}

// extractBody removes the frontmatter block and returns the
// instructional markdown that follows it.
func extractBody(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == -1 {
		return content
	}

	return strings.TrimLeft(strings.Join(lines[frontmatterEnd+1:], "\n"), "\n")
}
