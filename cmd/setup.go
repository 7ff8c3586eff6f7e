package cmd

import (
	"fmt"
	"os"

	"github.com/patrickdmiller/trim-scripts/infrastructure/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// Prompter interface for interactive prompts (allows mocking in tests)
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter using the survey library
type SurveyPrompter struct{}

func (p *SurveyPrompter) Input(message string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// DefaultPrompter is the prompter used in production
var DefaultPrompter Prompter = &SurveyPrompter{}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactively create the configuration file",
	Long: `Walk through the configuration options (tool paths, video extension,
output directory) and write them to the config file. An existing file is
only overwritten after confirmation.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithDependencies(DefaultPrompter, cfgFile, cmd.OutOrStdout())
}

// RunSetupWithDependencies runs the setup command with injected dependencies (for testing)
func RunSetupWithDependencies(prompter Prompter, configPath string, output OutputWriter) error {
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm(fmt.Sprintf("Config file %s exists. Overwrite?", configPath), false)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(output, "Setup cancelled.")
			return nil
		}
	}

	defaults := config.Default()
	cfg := &config.Config{}
	var err error

	if cfg.Tools.FFmpegPath, err = prompter.Input("Path to ffmpeg:", defaults.Tools.FFmpegPath); err != nil {
		return err
	}
	if cfg.Tools.FFprobePath, err = prompter.Input("Path to ffprobe:", defaults.Tools.FFprobePath); err != nil {
		return err
	}
	if cfg.Video.Extension, err = prompter.Input("Video extension for directory inputs:", defaults.Video.Extension); err != nil {
		return err
	}
	if cfg.Paths.OutputDirectory, err = prompter.Input("Output directory (empty writes next to inputs):", ""); err != nil {
		return err
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(output, "Wrote %s\n", configPath)
	return nil
}
