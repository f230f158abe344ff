package main

import (
	"github.com/spf13/cobra"

	"github.com/xamlint/xamlint/pkg/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "xamlint",
	Short: "Rule-based linter for AvaloniaUI XAML",
	Long: `Xamlint validates AvaloniaUI XAML documents against structural and
compatibility rules and analyzes markup and code-behind for UI
performance problems.

Run "xamlint validate" for correctness checks and "xamlint analyze"
for performance findings. Both score each document from 0 to 100.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to config file (TOML, YAML, or JSON)")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format: text, json, markdown, toon")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Write output to file")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress the progress bar")
}

// getPaths returns paths from args, defaulting to ["."]
func getPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

// getFormat returns the format flag value from the command.
func getFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("format")
	return format
}

// getOutputFile returns the output file path from the command.
func getOutputFile(cmd *cobra.Command) string {
	outputFile, _ := cmd.Flags().GetString("output")
	return outputFile
}

func getQuiet(cmd *cobra.Command) bool {
	quiet, _ := cmd.Flags().GetBool("quiet")
	return quiet
}

// loadConfig loads the file named by --config, or searches the standard
// locations and falls back to defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadOrDefault(), nil
}

// intFlagOrConfig returns the CLI flag value if explicitly set, otherwise the
// config value.
func intFlagOrConfig(cmd *cobra.Command, flagName string, cfgValue int) int {
	if cmd.Flags().Changed(flagName) {
		val, _ := cmd.Flags().GetInt(flagName)
		return val
	}
	return cfgValue
}
