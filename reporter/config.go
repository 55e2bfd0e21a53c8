package reporter

import (
	"github.com/webdriverkit/screenshot-reporter/metadata"
	"github.com/webdriverkit/screenshot-reporter/pathresolver"
)

// Default document settings ...
const (
	DefaultDocTitle = "Generated test report"
	DefaultDocName  = "report.html"
)

// Config ...
type Config struct {
	// BaseDirectory is the root of all written artifacts. Required.
	BaseDirectory string

	// PathBuilder names each spec's artifacts. Defaults to a fresh random
	// identifier per spec.
	PathBuilder pathresolver.NamingFunc

	// MetadataBuilder and Jasmine2MetadataBuilder normalize the two host
	// result shapes into metadata records. Defaults cover both shapes.
	MetadataBuilder         metadata.LegacyBuilder
	Jasmine2MetadataBuilder metadata.Builder

	ScreenshotsSubfolder string
	JSONsSubfolder       string

	TakeScreenshotsForSkippedSpecs    bool
	TakeScreenshotsOnlyForFailedSpecs bool

	DocTitle        string
	DocName         string
	CSSOverrideFile string

	// PreserveDirectory keeps an existing report directory and merges new
	// results into its aggregate. When false the directory is removed at
	// construction.
	PreserveDirectory bool

	GatherBrowserLogs bool

	Verbose bool
}

// DefaultConfig returns a Config with the documented defaults applied:
// directory preservation and browser-log gathering on, screenshots for every
// spec.
func DefaultConfig(baseDirectory string) Config {
	return Config{
		BaseDirectory:     baseDirectory,
		DocTitle:          DefaultDocTitle,
		DocName:           DefaultDocName,
		PreserveDirectory: true,
		GatherBrowserLogs: true,
	}
}

func (c Config) withDefaults() Config {
	if c.PathBuilder == nil {
		c.PathBuilder = pathresolver.DefaultNaming
	}
	if c.MetadataBuilder == nil {
		c.MetadataBuilder = metadata.BuildLegacy
	}
	if c.Jasmine2MetadataBuilder == nil {
		c.Jasmine2MetadataBuilder = metadata.Build
	}
	if c.DocTitle == "" {
		c.DocTitle = DefaultDocTitle
	}
	if c.DocName == "" {
		c.DocName = DefaultDocName
	}
	return c
}
