package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bayesmc",
	Short: "bayesmc - adaptive Metropolis-Hastings Bayesian estimation",
	Long: `bayesmc runs an adaptive random-walk Metropolis-Hastings sampler over a
statistical model: seed search on the joint prior, per-parameter variance
balancing, the multivariate Metropolis walk with burn-in covariance tuning,
and posterior summarization (moments, credible intervals, LPML).

The run subcommand estimates the built-in univariate Normal model from a
YAML configuration, either on generated data or on a file of observations.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand: show help instead of silently succeeding.
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	// Errors are rendered by the printer package; keep Cobra quiet.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
