package skills

import "fmt"

// StructuralError indicates the frontmatter section of a SKILL.md could
// not be parsed as a key/value mapping.
type StructuralError struct {
	Path string
	Err  error
}

func (e *StructuralError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: malformed frontmatter: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: malformed frontmatter", e.Path)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// FieldError indicates a required frontmatter field is missing or
// invalid, or an optional field has the wrong type.
type FieldError struct {
	Path   string
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q: %s", e.Path, e.Field, e.Reason)
}

// AccessError indicates an I/O or permission fault reading a root
// directory or a skill file. It is distinct from parse errors so that
// callers can tell a broken definition from a broken filesystem.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// PathSafetyError indicates a skill path resolves outside the
// directory that is supposed to contain it: a resource escaping the
// skill's own directory, or a skill directory escaping its root. The
// offending skill is excluded wholesale.
type PathSafetyError struct {
	Directory string
	Resource  string
}

func (e *PathSafetyError) Error() string {
	return fmt.Sprintf("%s: %q escapes its containing directory", e.Directory, e.Resource)
}

// Diagnostic records a skill or root that was excluded from the
// visible collection and the validation that failed. Diagnostics are
// the only way to distinguish "no skills configured" from "skills
// exist but none survived validation".
type Diagnostic struct {
	Directory string // The skill directory (or root) the diagnostic refers to
	Err       error  // One of StructuralError, FieldError, AccessError, PathSafetyError
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %v", d.Directory, d.Err)
}
