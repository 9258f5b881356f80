// Package sysprompt assembles the system prompt handed to the
// external agent framework. Templates are embedded; rendering is
// deterministic for a given context, so the same snapshot always
// yields byte-identical prompt text.
package sysprompt

import "github.com/skillet-ai/skillet/pkg/skills"

// SystemPrompt renders the full system prompt with the default
// renderer.
func SystemPrompt(ctx *PromptContext) (string, error) {
	return defaultRenderer.RenderSystemPrompt(ctx)
}

// SkillsSection renders just the skill disclosure fragment for a
// snapshot. This is the text handed to the external prompt assembler:
// the two root-location hints plus one "name: description" line per
// visible skill, or the no-skills marker.
func SkillsSection(snap *skills.Snapshot) (string, error) {
	ctx := &PromptContext{}
	ctx.WithSnapshot(snap)
	return defaultRenderer.RenderSkillsSection(ctx)
}
