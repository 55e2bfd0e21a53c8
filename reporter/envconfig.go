package reporter

import (
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/log"
)

// Input is the env-var configuration surface for CI use. Defaults are
// expected to be supplied by the surrounding step/job definition, as with any
// step input contract.
type Input struct {
	BaseDirectory        string `env:"base_directory,required"`
	ScreenshotsSubfolder string `env:"screenshots_subfolder"`
	JSONsSubfolder       string `env:"jsons_subfolder"`

	TakeScreenshotsForSkippedSpecs    bool `env:"take_screenshots_for_skipped_specs,opt[yes,no]"`
	TakeScreenshotsOnlyForFailedSpecs bool `env:"take_screenshots_only_for_failed_specs,opt[yes,no]"`

	DocTitle        string `env:"doc_title"`
	DocName         string `env:"doc_name"`
	CSSOverrideFile string `env:"css_override_file"`

	PreserveDirectory bool `env:"preserve_directory,opt[yes,no]"`
	GatherBrowserLogs bool `env:"gather_browser_logs,opt[yes,no]"`

	Verbose bool `env:"verbose,opt[yes,no]"`
}

// ProcessConfig parses and prints the env-var inputs and maps them onto a
// Config. Builder functions keep their defaults: they cannot cross an env-var
// boundary.
func ProcessConfig(inputParser stepconf.InputParser, logger log.Logger) (Config, error) {
	var input Input
	if err := inputParser.Parse(&input); err != nil {
		return Config{}, err
	}

	stepconf.Print(input)
	logger.Println()

	cfg := DefaultConfig(input.BaseDirectory)
	cfg.ScreenshotsSubfolder = input.ScreenshotsSubfolder
	cfg.JSONsSubfolder = input.JSONsSubfolder
	cfg.TakeScreenshotsForSkippedSpecs = input.TakeScreenshotsForSkippedSpecs
	cfg.TakeScreenshotsOnlyForFailedSpecs = input.TakeScreenshotsOnlyForFailedSpecs
	if input.DocTitle != "" {
		cfg.DocTitle = input.DocTitle
	}
	if input.DocName != "" {
		cfg.DocName = input.DocName
	}
	cfg.CSSOverrideFile = input.CSSOverrideFile
	cfg.PreserveDirectory = input.PreserveDirectory
	cfg.GatherBrowserLogs = input.GatherBrowserLogs
	cfg.Verbose = input.Verbose

	return cfg, nil
}
