package reporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/webdriverkit/screenshot-reporter/reporter/mocks"
)

func defaultEnvValues() map[string]string {
	return map[string]string{
		"base_directory":                         "/tmp/reports",
		"screenshots_subfolder":                  "",
		"jsons_subfolder":                        "",
		"take_screenshots_for_skipped_specs":     "no",
		"take_screenshots_only_for_failed_specs": "no",
		"doc_title":                              "",
		"doc_name":                               "",
		"css_override_file":                      "",
		"preserve_directory":                     "yes",
		"gather_browser_logs":                    "yes",
		"verbose":                                "no",
	}
}

func createInputParser(t *testing.T, envValues map[string]string) stepconf.InputParser {
	envRepository := mocks.NewRepository(t)

	call := envRepository.On("Get", mock.Anything)
	call.RunFn = func(arguments mock.Arguments) {
		key := arguments[0].(string)
		value := envValues[key]
		call.ReturnArguments = mock.Arguments{value, nil}
	}

	return stepconf.NewInputParser(envRepository)
}

func Test_GivenDefaultEnvValues_WhenProcessingConfig_ThenDefaultsApply(t *testing.T) {
	// Given
	inputParser := createInputParser(t, defaultEnvValues())

	// When
	cfg, err := ProcessConfig(inputParser, log.NewLogger())

	// Then
	require.NoError(t, err)
	assert.Equal(t, "/tmp/reports", cfg.BaseDirectory)
	assert.Equal(t, DefaultDocTitle, cfg.DocTitle)
	assert.Equal(t, DefaultDocName, cfg.DocName)
	assert.True(t, cfg.PreserveDirectory)
	assert.True(t, cfg.GatherBrowserLogs)
	assert.False(t, cfg.TakeScreenshotsOnlyForFailedSpecs)
}

func Test_GivenMissingBaseDirectory_WhenProcessingConfig_ThenFails(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["base_directory"] = ""

	inputParser := createInputParser(t, envValues)

	// When
	_, err := ProcessConfig(inputParser, log.NewLogger())

	// Then
	require.Error(t, err)
}

func Test_GivenCustomEnvValues_WhenProcessingConfig_ThenTheyOverrideDefaults(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["screenshots_subfolder"] = "screenshots"
	envValues["jsons_subfolder"] = "jsons"
	envValues["take_screenshots_only_for_failed_specs"] = "yes"
	envValues["doc_title"] = "Nightly UI report"
	envValues["doc_name"] = "nightly.html"
	envValues["preserve_directory"] = "no"

	inputParser := createInputParser(t, envValues)

	// When
	cfg, err := ProcessConfig(inputParser, log.NewLogger())

	// Then
	require.NoError(t, err)
	assert.Equal(t, "screenshots", cfg.ScreenshotsSubfolder)
	assert.Equal(t, "jsons", cfg.JSONsSubfolder)
	assert.True(t, cfg.TakeScreenshotsOnlyForFailedSpecs)
	assert.Equal(t, "Nightly UI report", cfg.DocTitle)
	assert.Equal(t, "nightly.html", cfg.DocName)
	assert.False(t, cfg.PreserveDirectory)
}

func Test_GivenConfigFile_WhenLoading_ThenValuesAndDefaultsCombine(t *testing.T) {
	// Given
	content := `
baseDirectory: ./reports
screenshotsSubfolder: screenshots
takeScreenShotsOnlyForFailedSpecs: true
docTitle: Smoke report
preserveDirectory: false
`
	pth := filepath.Join(t.TempDir(), "reporter.yml")
	require.NoError(t, os.WriteFile(pth, []byte(content), 0600))

	// When
	cfg, err := LoadConfigFile(pth)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "./reports", cfg.BaseDirectory)
	assert.Equal(t, "screenshots", cfg.ScreenshotsSubfolder)
	assert.True(t, cfg.TakeScreenshotsOnlyForFailedSpecs)
	assert.Equal(t, "Smoke report", cfg.DocTitle)
	assert.Equal(t, DefaultDocName, cfg.DocName)
	assert.False(t, cfg.PreserveDirectory)

	// fields left out of the file keep their defaults
	assert.True(t, cfg.GatherBrowserLogs)
}

func Test_GivenMissingConfigFile_WhenLoading_ThenFails(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "does-not-exist.yml"))

	require.Error(t, err)
}

func Test_GivenZeroValueConfig_WhenApplyingDefaults_ThenBuildersAndDocFieldsAreFilled(t *testing.T) {
	cfg := Config{BaseDirectory: "/tmp/reports"}.withDefaults()

	assert.NotNil(t, cfg.PathBuilder)
	assert.NotNil(t, cfg.MetadataBuilder)
	assert.NotNil(t, cfg.Jasmine2MetadataBuilder)
	assert.Equal(t, DefaultDocTitle, cfg.DocTitle)
	assert.Equal(t, DefaultDocName, cfg.DocName)
}
