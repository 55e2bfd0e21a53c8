package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/webdriverkit/screenshot-reporter/export/mocks"
)

type testingMocks struct {
	envRepository *mocks.Repository
}

func createSutAndMocks() (Exporter, testingMocks) {
	envRepository := new(mocks.Repository)
	envRepository.On("Set", mock.Anything, mock.Anything).Return(nil)

	exporter := NewExporter(envRepository, log.NewLogger())

	return exporter, testingMocks{
		envRepository: envRepository,
	}
}

func Test_GivenSuccessfulRun_WhenExportingTestRunResult_ThenSetsEnvVariableToSuccess(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks()

	// When
	exporter.ExportTestRunResult(false)

	// Then
	mocks.envRepository.AssertCalled(t, "Set", "SCREENSHOT_REPORT_RESULT", "succeeded")
}

func Test_GivenFailedRun_WhenExportingTestRunResult_ThenSetsEnvVariableToFailure(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks()

	// When
	exporter.ExportTestRunResult(true)

	// Then
	mocks.envRepository.AssertCalled(t, "Set", "SCREENSHOT_REPORT_RESULT", "failed")
}

func Test_GivenReportDirectory_WhenExporting_ThenZipsItAndSetsEnvVariables(t *testing.T) {
	// Given
	tempDir := t.TempDir()
	deployDir := filepath.Join(tempDir, "deploy")
	require.NoError(t, os.MkdirAll(deployDir, 0700))

	reportDir := filepath.Join(tempDir, "screenshot-report")
	require.NoError(t, os.MkdirAll(reportDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(reportDir, "report.json"), []byte("[]"), 0600))

	exporter, mocks := createSutAndMocks()

	// When
	err := exporter.ExportReportDir(deployDir, reportDir)

	// Then
	require.NoError(t, err)

	zipPath := filepath.Join(deployDir, "screenshot-report.zip")
	assert.FileExists(t, zipPath)
	mocks.envRepository.AssertCalled(t, "Set", "SCREENSHOT_REPORT_DIR", reportDir)
	mocks.envRepository.AssertCalled(t, "Set", "SCREENSHOT_REPORT_ZIP_PATH", zipPath)
}
