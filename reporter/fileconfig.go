package reporter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	BaseDirectory        string `yaml:"baseDirectory"`
	ScreenshotsSubfolder string `yaml:"screenshotsSubfolder"`
	JSONsSubfolder       string `yaml:"jsonsSubfolder"`

	TakeScreenshotsForSkippedSpecs    bool `yaml:"takeScreenShotsForSkippedSpecs"`
	TakeScreenshotsOnlyForFailedSpecs bool `yaml:"takeScreenShotsOnlyForFailedSpecs"`

	DocTitle        *string `yaml:"docTitle"`
	DocName         *string `yaml:"docName"`
	CSSOverrideFile string  `yaml:"cssOverrideFile"`

	PreserveDirectory *bool `yaml:"preserveDirectory"`
	GatherBrowserLogs *bool `yaml:"gatherBrowserLogs"`

	Verbose bool `yaml:"verbose"`
}

// LoadConfigFile reads reporter configuration from a YAML file. Fields left
// out of the file keep the documented defaults.
func LoadConfigFile(pth string) (Config, error) {
	bytes, err := os.ReadFile(pth)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file (%s): %w", pth, err)
	}

	var parsed fileConfig
	if err := yaml.Unmarshal(bytes, &parsed); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file (%s): %w", pth, err)
	}

	cfg := DefaultConfig(parsed.BaseDirectory)
	cfg.ScreenshotsSubfolder = parsed.ScreenshotsSubfolder
	cfg.JSONsSubfolder = parsed.JSONsSubfolder
	cfg.TakeScreenshotsForSkippedSpecs = parsed.TakeScreenshotsForSkippedSpecs
	cfg.TakeScreenshotsOnlyForFailedSpecs = parsed.TakeScreenshotsOnlyForFailedSpecs
	if parsed.DocTitle != nil {
		cfg.DocTitle = *parsed.DocTitle
	}
	if parsed.DocName != nil {
		cfg.DocName = *parsed.DocName
	}
	cfg.CSSOverrideFile = parsed.CSSOverrideFile
	if parsed.PreserveDirectory != nil {
		cfg.PreserveDirectory = *parsed.PreserveDirectory
	}
	if parsed.GatherBrowserLogs != nil {
		cfg.GatherBrowserLogs = *parsed.GatherBrowserLogs
	}
	cfg.Verbose = parsed.Verbose

	return cfg, nil
}
