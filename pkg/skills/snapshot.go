package skills

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Snapshot is the immutable result of one scan: the validated,
// precedence-resolved skill collection in deterministic name order,
// plus the diagnostics for everything that was excluded. A snapshot is
// never patched in place; rescanning produces a new one.
type Snapshot struct {
	id          string
	records     []*Skill
	byName      map[string]*Skill
	diagnostics []Diagnostic
	roots       []Root
}

func newSnapshot(merged map[string]*Skill, diagnostics []Diagnostic, roots []Root) *Snapshot {
	records := sortedSkills(merged)
	byName := make(map[string]*Skill, len(records))
	for _, skill := range records {
		byName[skill.Name] = skill
	}

	return &Snapshot{
		id:          uuid.NewString(),
		records:     records,
		byName:      byName,
		diagnostics: diagnostics,
		roots:       roots,
	}
}

// ID identifies this snapshot in logs and diagnostics.
func (s *Snapshot) ID() string { return s.id }

// Len returns the number of visible skills.
func (s *Snapshot) Len() int { return len(s.records) }

// Skills returns the visible collection sorted by name.
func (s *Snapshot) Skills() []*Skill {
	records := make([]*Skill, len(s.records))
	copy(records, s.records)
	return records
}

// Get returns a visible skill by name.
func (s *Snapshot) Get(name string) (*Skill, bool) {
	skill, ok := s.byName[name]
	return skill, ok
}

// Diagnostics returns the exclusions recorded during the scan.
func (s *Snapshot) Diagnostics() []Diagnostic {
	diagnostics := make([]Diagnostic, len(s.diagnostics))
	copy(diagnostics, s.diagnostics)
	return diagnostics
}

// Roots returns the roots the snapshot was scanned from.
func (s *Snapshot) Roots() []Root {
	roots := make([]Root, len(s.roots))
	copy(roots, s.roots)
	return roots
}

// Summaries projects every visible skill down to its bounded prompt
// surface. This is the only shape the prompt builder ever sees.
func (s *Snapshot) Summaries() []Summary {
	summaries := make([]Summary, 0, len(s.records))
	for _, skill := range s.records {
		summaries = append(summaries, Summary{
			Name:        skill.Name,
			Description: skill.Description,
		})
	}
	return summaries
}

// LoadFull returns the raw definition-file content of a visible skill:
// the second disclosure tier, read on demand.
func (s *Snapshot) LoadFull(name string) (string, error) {
	skill, ok := s.byName[name]
	if !ok {
		return "", errors.Errorf("skill %q not found", name)
	}

	content, err := os.ReadFile(skill.Path)
	if err != nil {
		return "", &AccessError{Path: skill.Path, Err: err}
	}
	return string(content), nil
}

// LoadBody returns the instructional body of a visible skill with the
// frontmatter stripped.
func (s *Snapshot) LoadBody(name string) (string, error) {
	content, err := s.LoadFull(name)
	if err != nil {
		return "", err
	}
	return extractBody(content), nil
}

// ListResources returns the supporting files a skill ships, keyed by
// resource directory (scripts, references, assets).
func (s *Snapshot) ListResources(name string) (map[string][]string, error) {
	skill, ok := s.byName[name]
	if !ok {
		return nil, errors.Errorf("skill %q not found", name)
	}
	return listResources(skill.Directory), nil
}

// RenderFull renders the on-demand disclosure text for a skill: its
// body plus hints about the supporting resources in its directory.
func (s *Snapshot) RenderFull(name string) (string, error) {
	skill, ok := s.byName[name]
	if !ok {
		return "", errors.Errorf("skill %q not found", name)
	}

	body, err := s.LoadBody(name)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Skill: %s\n\n", skill.Name)
	sb.WriteString(body)

	resources := listResources(skill.Directory)
	if len(resources) > 0 {
		fmt.Fprintf(&sb, "\n\n**Available resources in %s:**\n", skill.Directory)
		for _, sub := range resourceDirs {
			files, ok := resources[sub]
			if !ok {
				continue
			}
			sort.Strings(files)
			fmt.Fprintf(&sb, "- %s: %s\n", sub, strings.Join(files, ", "))
		}
	}

	return sb.String(), nil
}

// Filter returns a new snapshot restricted to skills whose names match
// the allowlist. Entries are glob patterns; an empty allowlist keeps
// everything. Diagnostics and roots carry over unchanged.
func (s *Snapshot) Filter(allowed []string) *Snapshot {
	if len(allowed) == 0 {
		return s
	}

	matchers := make([]glob.Glob, 0, len(allowed))
	literals := make(map[string]bool)
	for _, pattern := range allowed {
		g, err := glob.Compile(pattern)
		if err != nil {
			literals[pattern] = true
			continue
		}
		matchers = append(matchers, g)
	}

	filtered := make(map[string]*Skill)
	for _, skill := range s.records {
		if literals[skill.Name] {
			filtered[skill.Name] = skill
			continue
		}
		for _, g := range matchers {
			if g.Match(skill.Name) {
				filtered[skill.Name] = skill
				break
			}
		}
	}

	return newSnapshot(filtered, s.diagnostics, s.roots)
}
