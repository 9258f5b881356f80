// Package skills implements progressive disclosure of agent skills.
// Skills are packaged as directories containing a SKILL.md file with
// YAML frontmatter describing the skill's purpose and instructions.
// A scan exposes only bounded metadata (name + description); the full
// instructional body is read on demand by path.
package skills

// Source identifies which root directory a skill was discovered under.
type Source string

const (
	// SourceUser marks skills from the user-level root (~/.skillet/skills)
	SourceUser Source = "user"
	// SourceProject marks skills from the project-level root (./.skillet/skills).
	// Project skills shadow user skills with the same name.
	SourceProject Source = "project"
)

const (
	skillFileName = "SKILL.md"

	maxNameLength        = 64
	maxDescriptionLength = 1024

	// SKILL.md files larger than this are rejected outright
	maxSkillFileSize = 10 * 1024 * 1024
)

// Skill represents a discovered skill with its metadata.
// Body is intentionally absent: the scan phase only loads frontmatter,
// and Snapshot.LoadBody reads the full instructions when asked.
type Skill struct {
	Name          string            // Unique name from frontmatter
	Description   string            // Brief description for model decision-making
	Source        Source            // Which root the skill came from
	Directory     string            // Full path to the skill directory
	Path          string            // Full path to the SKILL.md file
	License       string            // Optional license identifier
	Compatibility string            // Optional compatibility note
	Metadata      map[string]string // Optional free-form metadata mapping
	AllowedTools  string            // Optional hint restricting tool usage
}

// Summary is the first disclosure tier: the bounded surface of a skill
// that is safe to embed in a prompt. It never carries the body, the
// definition path, or custom metadata.
type Summary struct {
	Name        string
	Description string
}
