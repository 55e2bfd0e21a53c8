package export

import (
	"fmt"
	"path/filepath"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/ziputil"
)

// Exported env var keys ...
const (
	testRunResultKey = "SCREENSHOT_REPORT_RESULT"
	reportDirKey     = "SCREENSHOT_REPORT_DIR"
	reportZipKey     = "SCREENSHOT_REPORT_ZIP_PATH"
)

// Exporter publishes run-level outputs for the surrounding CI environment:
// the overall result and the report directory, zipped for artifact upload.
type Exporter interface {
	ExportTestRunResult(failed bool)
	ExportReportDir(deployDir, reportDir string) error
}

type exporter struct {
	envRepository env.Repository
	logger        log.Logger
}

// NewExporter ...
func NewExporter(envRepository env.Repository, logger log.Logger) Exporter {
	return &exporter{
		envRepository: envRepository,
		logger:        logger,
	}
}

func (e exporter) ExportTestRunResult(failed bool) {
	status := "succeeded"
	if failed {
		status = "failed"
	}
	if err := e.envRepository.Set(testRunResultKey, status); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", testRunResultKey, err)
	}
}

func (e exporter) ExportReportDir(deployDir, reportDir string) error {
	if err := e.envRepository.Set(reportDirKey, reportDir); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", reportDirKey, err)
	}

	zipPath := filepath.Join(deployDir, filepath.Base(reportDir)+".zip")
	if err := ziputil.ZipDir(reportDir, zipPath, true); err != nil {
		return fmt.Errorf("failed to compress report directory: %w", err)
	}

	if err := e.envRepository.Set(reportZipKey, zipPath); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", reportZipKey, err)
	}

	return nil
}
