package sysprompt

import (
	"io/fs"
	"sort"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// Renderer provides prompt template rendering capabilities
type Renderer struct {
	templates *template.Template
	parseErr  error
}

var defaultRenderer = NewRenderer(TemplateFS)

// NewRenderer creates a new template renderer from the given filesystem
func NewRenderer(fs fs.FS) *Renderer {
	renderer := &Renderer{}
	renderer.templates, renderer.parseErr = parseTemplates(fs)
	return renderer
}

// RenderPrompt renders a named template with the provided context
func (r *Renderer) RenderPrompt(name string, ctx *PromptContext) (string, error) {
	if r.parseErr != nil {
		return "", errors.Wrap(r.parseErr, "failed to initialize templates")
	}

	if r.templates.Lookup(name) == nil {
		return "", errors.Errorf("template %s not found", name)
	}

	var buf strings.Builder
	if err := r.templates.ExecuteTemplate(&buf, name, ctx); err != nil {
		return "", errors.Wrapf(err, "failed to execute template %s", name)
	}

	return buf.String(), nil
}

// RenderSystemPrompt renders the full system prompt
func (r *Renderer) RenderSystemPrompt(ctx *PromptContext) (string, error) {
	return r.RenderPrompt(SystemTemplate, ctx)
}

// RenderSkillsSection renders the skill disclosure fragment on its own
func (r *Renderer) RenderSkillsSection(ctx *PromptContext) (string, error) {
	return r.RenderPrompt(SkillsTemplate, ctx)
}

func parseTemplates(templateFS fs.FS) (*template.Template, error) {
	templatePaths, err := collectTemplatePaths(templateFS, "templates")
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect template paths")
	}

	templates := template.New("templates")
	var selfRef *template.Template
	templates = templates.Funcs(template.FuncMap{
		"include": func(templateName string, data any) (string, error) {
			var buf strings.Builder
			err := selfRef.ExecuteTemplate(&buf, templateName, data)
			return buf.String(), err
		},
	})
	selfRef = templates

	for _, path := range templatePaths {
		content, err := fs.ReadFile(templateFS, path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read template file %s", path)
		}

		if _, err := templates.New(path).Parse(string(content)); err != nil {
			return nil, errors.Wrapf(err, "failed to parse template %s", path)
		}
	}

	return templates, nil
}

func collectTemplatePaths(templateFS fs.FS, dir string) ([]string, error) {
	var paths []string
	err := fs.WalkDir(templateFS, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}
