package skills

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/skillet-ai/skillet/pkg/logger"
)

// Root is one directory skills are discovered under, tagged with the
// precedence tier it represents.
type Root struct {
	Dir    string
	Source Source
}

// Discovery scans the configured roots and produces immutable
// snapshots of the visible skill collection.
type Discovery struct {
	roots []Root
}

// Option is a function that configures a Discovery
type Option func(*Discovery) error

// WithRoots sets custom skill roots. Roots are scanned in order and a
// later root shadows earlier ones on name collisions, so the
// highest-precedence root goes last.
func WithRoots(roots ...Root) Option {
	return func(d *Discovery) error {
		if len(roots) == 0 {
			return errors.New("at least one skill root must be specified")
		}
		d.roots = roots
		return nil
	}
}

// WithDefaultRoots initializes the two well-known roots: user-level
// skills under the home directory, then project-level skills which
// shadow them.
func WithDefaultRoots() Option {
	return func(d *Discovery) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		d.roots = []Root{
			{Dir: filepath.Join(homeDir, ".skillet", "skills"), Source: SourceUser},
			{Dir: filepath.Join(".skillet", "skills"), Source: SourceProject},
		}
		return nil
	}
}

// NewDiscovery creates a new skill discovery instance
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{}

	if len(opts) == 0 {
		if err := WithDefaultRoots()(d); err != nil {
			return nil, err
		}
	} else {
		for _, opt := range opts {
			if err := opt(d); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Roots returns the configured roots in scan order.
func (d *Discovery) Roots() []Root {
	roots := make([]Root, len(d.roots))
	copy(roots, d.roots)
	return roots
}

// Scan walks every root and builds a fresh Snapshot. There is no fatal
// error path: a missing root contributes zero skills, and per-skill or
// per-root faults become diagnostics on the snapshot while the scan
// continues past them.
func (d *Discovery) Scan(ctx context.Context) *Snapshot {
	log := logger.G(ctx)

	merged := make(map[string]*Skill)
	var diagnostics []Diagnostic

	for _, root := range d.roots {
		entries, err := os.ReadDir(root.Dir)
		if err != nil {
			if os.IsNotExist(err) {
				log.WithField("root", root.Dir).Debug("Skill root does not exist, skipping")
				continue
			}
			diagnostics = append(diagnostics, Diagnostic{
				Directory: root.Dir,
				Err:       &AccessError{Path: root.Dir, Err: err},
			})
			log.WithField("root", root.Dir).WithError(err).Warn("Skill root unreadable, skipping")
			continue
		}

		rootBase, err := filepath.EvalSymlinks(root.Dir)
		if err != nil {
			diagnostics = append(diagnostics, Diagnostic{
				Directory: root.Dir,
				Err:       &AccessError{Path: root.Dir, Err: err},
			})
			log.WithField("root", root.Dir).WithError(err).Warn("Skill root unresolvable, skipping")
			continue
		}

		for _, entry := range entries {
			skillDir := filepath.Join(root.Dir, entry.Name())

			info, err := os.Stat(skillDir)
			if err != nil || !info.IsDir() {
				continue
			}

			// A skill directory that is itself a symlink must still
			// resolve inside the root
			resolved, err := filepath.EvalSymlinks(skillDir)
			if err != nil || !contained(rootBase, resolved) {
				diagnostics = append(diagnostics, Diagnostic{
					Directory: skillDir,
					Err:       &PathSafetyError{Directory: root.Dir, Resource: entry.Name()},
				})
				log.WithField("dir", skillDir).Warn("Skill directory escapes its root, excluded")
				continue
			}

			skill, err := d.loadSkill(skillDir, root.Source)
			if err != nil {
				if errors.Is(err, errNoSkillFile) {
					log.WithField("dir", skillDir).Debug("No SKILL.md, skipping")
					continue
				}
				diagnostics = append(diagnostics, Diagnostic{Directory: skillDir, Err: err})
				log.WithField("dir", skillDir).WithError(err).Warn("Skill excluded")
				continue
			}

			if prev, exists := merged[skill.Name]; exists {
				log.WithFields(map[string]interface{}{
					"skill":    skill.Name,
					"previous": prev.Source,
					"winner":   skill.Source,
				}).Debug("Skill shadowed by higher-precedence root")
			}
			merged[skill.Name] = skill
		}
	}

	return newSnapshot(merged, diagnostics, d.Roots())
}

var errNoSkillFile = errors.New("no skill definition file")

// loadSkill reads and validates one skill directory. The body is not
// loaded here; only frontmatter is parsed.
func (d *Discovery) loadSkill(skillDir string, source Source) (*Skill, error) {
	path := filepath.Join(skillDir, skillFileName)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errNoSkillFile
		}
		return nil, &AccessError{Path: path, Err: err}
	}
	if info.Size() > maxSkillFileSize {
		return nil, &FieldError{Path: path, Field: "body", Reason: "file exceeds 10MB"}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}

	skill, err := Parse(content, path, source)
	if err != nil {
		return nil, err
	}

	if err := checkResources(skillDir); err != nil {
		return nil, err
	}

	return skill, nil
}

func sortedSkills(merged map[string]*Skill) []*Skill {
	records := make([]*Skill, 0, len(merged))
	for _, skill := range merged {
		records = append(records, skill)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records
}
