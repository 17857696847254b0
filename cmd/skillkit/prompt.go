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

// PromptConfig holds the composition inputs for the prompt command.
type PromptConfig struct {
	Instructions     string
	InstructionsFile string
	Minimal          bool
}

func NewPromptConfig() *PromptConfig {
	return &PromptConfig{}
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Compose a system prompt section from the installed skills",
	Long: `Compose prompt text from optional base instructions and a compact list
of the installed skills, one line per skill. This is the cheap first
phase of progressive disclosure; use 'skillkit show' for a single
skill's full detail.

Examples:
  skillkit prompt --instructions "You are a helpful agent."
  skillkit prompt --instructions-file ./base.md --minimal`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getPromptConfigFromFlags(cmd)
		buildPromptCmd(cmd.Context(), config)
	},
}

func init() {
	defaults := NewPromptConfig()
	promptCmd.Flags().StringP("instructions", "i", defaults.Instructions, "Base instructions to place before the skill list")
	promptCmd.Flags().StringP("instructions-file", "f", defaults.InstructionsFile, "File containing base instructions")
	promptCmd.Flags().Bool("minimal", defaults.Minimal, "List only names and descriptions")
	rootCmd.AddCommand(promptCmd)
}

func getPromptConfigFromFlags(cmd *cobra.Command) *PromptConfig {
	config := NewPromptConfig()
	if v, err := cmd.Flags().GetString("instructions"); err == nil {
		config.Instructions = v
	}
	if v, err := cmd.Flags().GetString("instructions-file"); err == nil {
		config.InstructionsFile = v
	}
	if v, err := cmd.Flags().GetBool("minimal"); err == nil {
		config.Minimal = v
	}
	return config
}

func buildPromptCmd(ctx context.Context, config *PromptConfig) {
	root := viper.GetString("root")

	instructions := config.Instructions
	if config.InstructionsFile != "" {
		content, err := os.ReadFile(config.InstructionsFile)
		if err != nil {
			presenter.Error(errors.Wrap(err, "failed to read instructions file"), "Invalid instructions file")
			os.Exit(1)
		}
		instructions = string(content)
	}

	set, err := skills.NewLoader().LoadSkillSet(ctx, root)
	if err != nil {
		presenter.Error(err, "Failed to load skills")
		os.Exit(1)
	}

	for _, d := range set.Diagnostics {
		presenter.Diagnostic(d)
	}

	builder := prompt.NewBuilder().
		WithBaseInstructions(instructions).
		WithSkillSet(set)

	var opts []prompt.Option
	if config.Minimal {
		opts = append(opts, prompt.WithPolicy(prompt.ExcludeAllResources()))
	}

	fmt.Println(builder.Build(opts...))
}
