package sysprompt

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/skillet-ai/skillet/pkg/logger"
	"github.com/skillet-ai/skillet/pkg/skills"
)

// SubagentInfo is the prompt-facing surface of one registered
// subagent configuration.
type SubagentInfo struct {
	Name        string
	Description string
}

// PromptContext holds all variables for template rendering
type PromptContext struct {
	WorkingDirectory string
	IsGitRepo        bool
	Platform         string
	Date             string

	// Content contexts (AGENTS.md, README.md)
	ContextFiles map[string]string

	// Skill disclosure surface
	UserSkillsDir    string
	ProjectSkillsDir string
	Skills           []skills.Summary

	Subagents []SubagentInfo
}

// NewPromptContext creates a PromptContext with runtime defaults and
// no skills or subagents attached.
func NewPromptContext() *PromptContext {
	pwd, _ := os.Getwd()

	return &PromptContext{
		WorkingDirectory: pwd,
		IsGitRepo:        checkIsGitRepo(pwd),
		Platform:         runtime.GOOS,
		Date:             time.Now().Format("2006-01-02"),
		ContextFiles:     loadContexts(),
	}
}

// WithSnapshot attaches the visible skill collection and its root
// hints to the prompt context.
func (ctx *PromptContext) WithSnapshot(snap *skills.Snapshot) *PromptContext {
	if snap == nil {
		return ctx
	}

	ctx.Skills = snap.Summaries()
	for _, root := range snap.Roots() {
		switch root.Source {
		case skills.SourceUser:
			ctx.UserSkillsDir = root.Dir
		case skills.SourceProject:
			ctx.ProjectSkillsDir = root.Dir
		}
	}
	return ctx
}

// WithSubagents attaches the registered subagent listing.
func (ctx *PromptContext) WithSubagents(subagents []SubagentInfo) *PromptContext {
	ctx.Subagents = subagents
	return ctx
}

// loadContexts loads context files (AGENTS.md, README.md) from disk
func loadContexts() map[string]string {
	results := make(map[string]string)
	log := logger.G(context.Background())

	for _, filename := range []string{AgentsMd, ReadmeMd} {
		content, err := os.ReadFile(filename)
		if err != nil {
			log.WithError(err).WithField("filename", filename).Debug("failed to read context file")
			continue
		}
		results[filename] = string(content)
	}
	return results
}

// checkIsGitRepo checks if the given directory is a git repository
func checkIsGitRepo(dir string) bool {
	_, err := os.Stat(dir + "/.git")
	return err == nil
}
