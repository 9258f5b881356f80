package skills

import (
	"os"
	"path/filepath"
	"strings"
)

// Resource directories a skill may ship alongside SKILL.md. They are
// surfaced as hints in the full-content read (third disclosure tier).
var resourceDirs = []string{"scripts", "references", "assets"}

// checkResources verifies that every resource a skill ships resolves
// inside the skill's own directory. A single escaping entry (parent
// traversal, absolute symlink target) excludes the whole skill.
func checkResources(skillDir string) error {
	base, err := filepath.EvalSymlinks(skillDir)
	if err != nil {
		return &AccessError{Path: skillDir, Err: err}
	}

	for _, sub := range resourceDirs {
		entries, err := os.ReadDir(filepath.Join(skillDir, sub))
		if err != nil {
			// Resource dirs are optional
			continue
		}

		for _, entry := range entries {
			entryPath := filepath.Join(skillDir, sub, entry.Name())
			resolved, err := filepath.EvalSymlinks(entryPath)
			if err != nil {
				// Broken symlink: nothing to leak, but the reference is
				// still outside our control
				return &PathSafetyError{Directory: skillDir, Resource: filepath.Join(sub, entry.Name())}
			}
			if !contained(base, resolved) {
				return &PathSafetyError{Directory: skillDir, Resource: filepath.Join(sub, entry.Name())}
			}
		}
	}

	return nil
}

// contained reports whether path sits at or below base.
func contained(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, ".."+string(filepath.Separator)) && rel != "..")
}

// listResources enumerates the resource files shipped with a skill,
// keyed by resource directory. Only safe entries are listed.
func listResources(skillDir string) map[string][]string {
	base, err := filepath.EvalSymlinks(skillDir)
	if err != nil {
		return nil
	}

	resources := make(map[string][]string)
	for _, sub := range resourceDirs {
		entries, err := os.ReadDir(filepath.Join(skillDir, sub))
		if err != nil {
			continue
		}

		for _, entry := range entries {
			resolved, err := filepath.EvalSymlinks(filepath.Join(skillDir, sub, entry.Name()))
			if err != nil || !contained(base, resolved) {
				continue
			}
			resources[sub] = append(resources[sub], entry.Name())
		}
	}

	return resources
}
