package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jingkaihe/skillkit/pkg/presenter"
	"github.com/jingkaihe/skillkit/pkg/skills"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills under the skills root",
	Long: `List every skill package under the skills root with its name, version,
directory, and description. Only manifests are read; instruction bodies
are never loaded.`,
	Run: func(cmd *cobra.Command, _ []string) {
		listSkillsCmd(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listSkillsCmd(ctx context.Context) {
	root := viper.GetString("root")

	metadata, diagnostics, err := skills.NewLoader().LoadMetadata(ctx, root)
	if err != nil {
		presenter.Error(err, "Failed to load skills")
		os.Exit(1)
	}

	for _, d := range diagnostics {
		presenter.Diagnostic(d)
	}

	if len(metadata) == 0 {
		presenter.Info("No skills found in " + root)
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVERSION\tDIRECTORY\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t-------\t---------\t-----------")

	for _, m := range metadata {
		description := m.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		version := m.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Name, version, m.Path, description)
	}
	tw.Flush()
}
