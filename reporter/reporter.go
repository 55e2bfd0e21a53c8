package reporter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/webdriverkit/screenshot-reporter/artifactstore"
	"github.com/webdriverkit/screenshot-reporter/metadata"
	"github.com/webdriverkit/screenshot-reporter/pathresolver"
)

// Reporter wires the host's lifecycle callbacks to path resolution, metadata
// building and artifact storage. Its methods are the jasmine2 multi-callback
// reporter shape; ReportSpecResults is the legacy single-callback shape.
//
// A reporting failure never fails the run: everything past construction is
// logged as a warning and swallowed.
type Reporter struct {
	cfg       Config
	logger    log.Logger
	resolver  pathresolver.Resolver
	store     artifactstore.Store
	providers Providers

	aggregatePath string

	// suiteStack mirrors the host's active suite nesting. Host callbacks are
	// single-threaded, so push/pop needs no lock.
	suiteStack  []string
	specStarted time.Time
}

// New validates the configuration and prepares the report directory. An empty
// BaseDirectory is a ConfigurationError; everything else is deferred to the
// per-spec reporting path.
func New(cfg Config, logger log.Logger, fileManager fileutil.FileManager, providers Providers) (*Reporter, error) {
	if strings.TrimSpace(cfg.BaseDirectory) == "" {
		return nil, ConfigurationError{Option: "baseDirectory", Reason: "missing or empty"}
	}
	cfg = cfg.withDefaults()

	baseDirectory, err := pathutil.NewPathModifier().AbsPath(cfg.BaseDirectory)
	if err != nil {
		return nil, ConfigurationError{Option: "baseDirectory", Reason: fmt.Sprintf("failed to get absolute path: %s", err)}
	}
	cfg.BaseDirectory = baseDirectory

	logger.EnableDebugLog(cfg.Verbose)

	resolver := pathresolver.NewResolver(cfg.BaseDirectory, cfg.ScreenshotsSubfolder, cfg.JSONsSubfolder, cfg.DocName)
	store := artifactstore.NewStore(artifactstore.Options{
		DocTitle:        cfg.DocTitle,
		DocName:         cfg.DocName,
		CSSOverrideFile: cfg.CSSOverrideFile,
	}, logger, fileManager)

	r := &Reporter{
		cfg:           cfg,
		logger:        logger,
		resolver:      resolver,
		store:         store,
		providers:     providers,
		aggregatePath: resolver.AggregatePath(),
	}

	if cfg.PreserveDirectory {
		if err := store.LoadAggregate(r.aggregatePath); err != nil {
			logger.Warnf("Failed to load existing aggregate report, starting empty: %s", err)
		}
	} else {
		if err := fileManager.RemoveAll(cfg.BaseDirectory); err != nil {
			logger.Warnf("Failed to clean report directory (%s): %s", cfg.BaseDirectory, err)
		}
	}

	return r, nil
}

// SuiteStarted ...
func (r *Reporter) SuiteStarted(description string) {
	r.suiteStack = append(r.suiteStack, description)
}

// SuiteDone ...
func (r *Reporter) SuiteDone() {
	if len(r.suiteStack) == 0 {
		return
	}
	r.suiteStack = r.suiteStack[:len(r.suiteStack)-1]
}

// SpecStarted records the spec start timestamp, used when the host result
// carries no timing of its own.
func (r *Reporter) SpecStarted() {
	r.specStarted = time.Now()
}

// SpecDone reports one completed jasmine2-shape spec: it resolves artifact
// paths, builds the metadata record, captures a screenshot per the configured
// policy and persists fragment plus aggregate. Metadata is written even when
// the screenshot fails.
func (r *Reporter) SpecDone(ctx context.Context, result metadata.SpecResult) {
	if result.Started.IsZero() {
		result.Started = r.specStarted
	}
	if result.Stopped.IsZero() {
		result.Stopped = time.Now()
	}

	descriptions := append(append([]string{}, r.suiteStack...), result.Description)
	capabilities := r.fetchCapabilities(ctx)

	record := r.cfg.Jasmine2MetadataBuilder(descriptions, result, capabilities)

	skipped := result.Status == metadata.StatusPending || result.Status == metadata.StatusDisabled
	r.persistSpec(ctx, descriptions, capabilities, record, r.wantScreenshot(record.Passed, skipped))
}

// ReportSpecResults reports one completed legacy-shape spec. The suite chain
// comes from the result's parent-suite linkage instead of the suite stack.
func (r *Reporter) ReportSpecResults(ctx context.Context, result metadata.LegacySpecResult) {
	if result.Started.IsZero() {
		result.Started = r.specStarted
	}
	if result.Stopped.IsZero() {
		result.Stopped = time.Now()
	}

	descriptions := append(result.SuiteChain(), result.Description)
	capabilities := r.fetchCapabilities(ctx)

	record := r.cfg.MetadataBuilder(descriptions, result, capabilities)

	r.persistSpec(ctx, descriptions, capabilities, record, r.wantScreenshot(record.Passed, result.Skipped))
}

// wantScreenshot applies the configured capture policy.
func (r *Reporter) wantScreenshot(passed, skipped bool) bool {
	if skipped {
		return r.cfg.TakeScreenshotsForSkippedSpecs
	}
	if r.cfg.TakeScreenshotsOnlyForFailedSpecs && passed {
		return false
	}
	return true
}

func (r *Reporter) persistSpec(ctx context.Context, descriptions []string, capabilities metadata.Capabilities, record metadata.Record, takeScreenshot bool) {
	if r.cfg.GatherBrowserLogs && r.providers.BrowserLogs != nil && metadata.SupportsLogRetrieval(capabilities) {
		logs, err := r.providers.BrowserLogs.BrowserLogs(ctx)
		if err != nil {
			r.logger.Warnf("Failed to gather browser logs: %s", err)
		} else {
			record.BrowserLogs = logs
		}
	}

	paths := r.resolver.Resolve(r.cfg.PathBuilder(descriptions, capabilities))

	if takeScreenshot && r.providers.Screenshots != nil {
		if screenshotFile := r.saveScreenshot(ctx, paths.Screenshot); screenshotFile != "" {
			record.ScreenshotFile = screenshotFile
		}
	}

	if err := r.store.SaveMetadataFragment(record, paths.MetadataFragment); err != nil {
		r.logger.Warnf("Failed to write metadata fragment: %s", err)
	}
	if err := r.store.MergeIntoAggregate(record, r.aggregatePath); err != nil {
		r.logger.Warnf("Failed to update aggregate report: %s", err)
	}
}

// saveScreenshot captures and stores a screenshot, returning its path
// relative to the base directory, or "" when nothing was stored.
func (r *Reporter) saveScreenshot(ctx context.Context, pth string) string {
	data, err := r.providers.Screenshots.TakeScreenshot(ctx)
	if err != nil {
		r.logger.Warnf("Failed to capture screenshot: %s", err)
		return ""
	}
	if err := r.store.SaveScreenshot(data, pth); err != nil {
		r.logger.Warnf("Failed to store screenshot: %s", err)
		return ""
	}

	relative, err := filepath.Rel(r.cfg.BaseDirectory, pth)
	if err != nil {
		return pth
	}
	return filepath.ToSlash(relative)
}

// fetchCapabilities asks the host for the session's capabilities. Failures
// are logged and reported with empty capabilities: an incomplete record beats
// a dropped one, and the run must never fail over reporting.
func (r *Reporter) fetchCapabilities(ctx context.Context) metadata.Capabilities {
	if r.providers.Capabilities == nil {
		return metadata.Capabilities{}
	}
	capabilities, err := r.providers.Capabilities.Capabilities(ctx)
	if err != nil {
		r.logger.Warnf("Failed to retrieve session capabilities: %s", err)
		return metadata.Capabilities{}
	}
	if capabilities == nil {
		capabilities = metadata.Capabilities{}
	}
	return capabilities
}
