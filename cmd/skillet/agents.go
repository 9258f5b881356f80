package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillet-ai/skillet/pkg/agents"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List registered subagent configurations",
	Long: `List the subagent configurations registered with the external agent
framework: built-in definitions plus any user- or project-level
overrides.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry, err := agents.NewRegistry(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTOOLS\tDESCRIPTION")
		for _, def := range registry.List() {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				def.Name, strings.Join(def.Tools, ","), def.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(agentsCmd)
}
