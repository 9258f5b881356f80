package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillet-ai/skillet/pkg/agents"
	"github.com/skillet-ai/skillet/pkg/skills"
	"github.com/skillet-ai/skillet/pkg/sysprompt"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Render the assembled system prompt",
	Long: `Render the system prompt the external agent framework would receive:
the base instructions, the skill disclosure section, the subagent
listing, and the runtime context.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx := cmd.Context()
		snapshot, _ := skills.Initialize(ctx, cfg.Skills)

		registry, err := agents.NewRegistry(ctx)
		if err != nil {
			return err
		}
		var subagents []sysprompt.SubagentInfo
		for _, def := range registry.List() {
			subagents = append(subagents, sysprompt.SubagentInfo{
				Name:        def.Name,
				Description: def.Description,
			})
		}

		promptCtx := sysprompt.NewPromptContext().
			WithSnapshot(snapshot).
			WithSubagents(subagents)

		prompt, err := sysprompt.SystemPrompt(promptCtx)
		if err != nil {
			return err
		}

		fmt.Println(prompt)
		return nil
	},
}

var skillsSectionCmd = &cobra.Command{
	Use:   "skills-section",
	Short: "Render only the skill disclosure fragment",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		snapshot, _ := skills.Initialize(cmd.Context(), cfg.Skills)
		section, err := sysprompt.SkillsSection(snapshot)
		if err != nil {
			return err
		}

		fmt.Println(section)
		return nil
	},
}

func init() {
	promptCmd.AddCommand(skillsSectionCmd)
	rootCmd.AddCommand(promptCmd)
}
