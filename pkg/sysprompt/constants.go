package sysprompt

import "embed"

//go:embed templates/*
var TemplateFS embed.FS

const (
	ProductName = "skillet"

	AgentsMd = "AGENTS.md"
	ReadmeMd = "README.md"

	// Template paths
	SystemTemplate    = "templates/system.tmpl"
	SkillsTemplate    = "templates/skills.tmpl"
	SubagentsTemplate = "templates/subagents.tmpl"

	// Marker rendered when the visible skill collection is empty
	NoSkillsMarker = "(no skills available)"
)
