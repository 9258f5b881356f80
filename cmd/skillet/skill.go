package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillet-ai/skillet/pkg/presenter"
	"github.com/skillet-ai/skillet/pkg/skills"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Inspect the visible skill collection",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all visible skills",
	Long: `List the visible skill collection: every valid skill discovered under
the user-level and project-level roots, after precedence resolution.
Excluded skills are reported as warnings.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		snapshot, enabled := skills.Initialize(cmd.Context(), cfg.Skills)
		if !enabled {
			presenter.Info("Skills are disabled")
			return nil
		}

		for _, diag := range snapshot.Diagnostics() {
			presenter.Warning(fmt.Sprintf("skill excluded: %s", diag))
		}

		if snapshot.Len() == 0 {
			presenter.Info("No skills installed")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSOURCE\tDESCRIPTION\tPATH")
		for _, skill := range snapshot.Skills() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				skill.Name, skill.Source, truncate(skill.Description, 60), skill.Path)
		}
		return w.Flush()
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <skill-name>",
	Short: "Show a skill's full instructions",
	Long: `Show the full instructional content of a visible skill: the second
disclosure tier, read on demand from the skill's definition file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		snapshot, enabled := skills.Initialize(cmd.Context(), cfg.Skills)
		if !enabled {
			presenter.Info("Skills are disabled")
			return nil
		}

		content, err := snapshot.RenderFull(args[0])
		if err != nil {
			return err
		}

		fmt.Println(content)
		return nil
	},
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func init() {
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
	rootCmd.AddCommand(skillCmd)
}
