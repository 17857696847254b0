package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jingkaihe/skillkit/pkg/presenter"
	"github.com/jingkaihe/skillkit/pkg/skills"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every skill under the skills root",
	Long: `Validate every skill package under the skills root. Parse failures and
rule violations are reported per skill; the command exits non-zero when
any error-severity diagnostic is found. Warnings alone do not fail the
command.`,
	Run: func(cmd *cobra.Command, _ []string) {
		validateSkillsCmd(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateSkillsCmd(ctx context.Context) {
	root := viper.GetString("root")

	set, err := skills.NewLoader(skills.WithEagerValidation()).LoadSkillSet(ctx, root)
	if err != nil {
		presenter.Error(err, "Failed to load skills")
		os.Exit(1)
	}

	for _, d := range set.Diagnostics {
		presenter.Diagnostic(d)
	}

	errorCount := 0
	warningCount := 0
	for _, d := range set.Diagnostics {
		if d.Severity == skills.SeverityError {
			errorCount++
		} else {
			warningCount++
		}
	}

	if !set.IsValid() {
		presenter.Error(set.Err(), fmt.Sprintf("%d skill(s) loaded, %d error(s), %d warning(s)", len(set.Skills), errorCount, warningCount))
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("%d skill(s) valid, %d warning(s)", len(set.Skills), warningCount))
}
