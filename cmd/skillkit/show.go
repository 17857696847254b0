package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jingkaihe/skillkit/pkg/presenter"
	"github.com/jingkaihe/skillkit/pkg/prompt"
	"github.com/jingkaihe/skillkit/pkg/skills"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ShowConfig holds the rendering toggles for the show command.
type ShowConfig struct {
	NoVersion bool
	NoAuthor  bool
	NoTags    bool
	Minimal   bool
}

func NewShowConfig() *ShowConfig {
	return &ShowConfig{}
}

var showCmd = &cobra.Command{
	Use:   "show <skill-name>",
	Short: "Show the full rendered detail of a skill",
	Long: `Show the full activated-skill payload: manifest fields followed by the
verbatim instruction body.

Examples:
  skillkit show data-wrangler
  skillkit show data-wrangler --minimal`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getShowConfigFromFlags(cmd)
		showSkillCmd(cmd.Context(), args[0], config)
	},
}

func init() {
	defaults := NewShowConfig()
	showCmd.Flags().Bool("no-version", defaults.NoVersion, "Omit the version line")
	showCmd.Flags().Bool("no-author", defaults.NoAuthor, "Omit the author line")
	showCmd.Flags().Bool("no-tags", defaults.NoTags, "Omit the tag list")
	showCmd.Flags().Bool("minimal", defaults.Minimal, "Render only name, description, and instructions")
	rootCmd.AddCommand(showCmd)
}

func getShowConfigFromFlags(cmd *cobra.Command) *ShowConfig {
	config := NewShowConfig()
	if v, err := cmd.Flags().GetBool("no-version"); err == nil {
		config.NoVersion = v
	}
	if v, err := cmd.Flags().GetBool("no-author"); err == nil {
		config.NoAuthor = v
	}
	if v, err := cmd.Flags().GetBool("no-tags"); err == nil {
		config.NoTags = v
	}
	if v, err := cmd.Flags().GetBool("minimal"); err == nil {
		config.Minimal = v
	}
	return config
}

func (c *ShowConfig) renderOptions() []prompt.Option {
	opts := []prompt.Option{
		prompt.WithVersion(!c.NoVersion),
		prompt.WithAuthor(!c.NoAuthor),
		prompt.WithTags(!c.NoTags),
	}
	if c.Minimal {
		opts = append(opts, prompt.WithPolicy(prompt.ExcludeAllResources()))
	}
	return opts
}

func showSkillCmd(ctx context.Context, name string, config *ShowConfig) {
	root := viper.GetString("root")

	set, err := skills.NewLoader().LoadSkillSet(ctx, root)
	if err != nil {
		presenter.Error(err, "Failed to load skills")
		os.Exit(1)
	}

	skill, ok := set.Find(name)
	if !ok {
		presenter.Error(errors.Errorf("skill '%s' not found in %s", name, root), "Skill not found")
		os.Exit(1)
	}

	fmt.Println(prompt.RenderSkillDetails(skill, config.renderOptions()...))
}
