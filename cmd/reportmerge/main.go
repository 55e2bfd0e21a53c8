package main

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/webdriverkit/screenshot-reporter/artifactstore"
	"github.com/webdriverkit/screenshot-reporter/metadata"
)

// reportmerge rebuilds the aggregate report file from the per-spec metadata
// fragments. The fragments are the durable per-spec records, so a damaged or
// deleted aggregate can always be reconstructed from them.
func main() {
	baseDir := pflag.String("base-dir", "", "report base directory (required)")
	docName := pflag.String("doc-name", "report.html", "report document name")
	docTitle := pflag.String("doc-title", "Generated test report", "report document title")
	verbose := pflag.Bool("verbose", false, "enable debug logging")
	pflag.Parse()

	logger := log.NewLogger()
	logger.EnableDebugLog(*verbose)

	if *baseDir == "" {
		color.Red("--base-dir is required")
		pflag.Usage()
		os.Exit(1)
	}

	aggregateName := strings.TrimSuffix(*docName, filepath.Ext(*docName)) + ".json"
	aggregatePath := filepath.Join(*baseDir, aggregateName)

	store := artifactstore.NewStore(artifactstore.Options{
		DocTitle: *docTitle,
		DocName:  *docName,
	}, logger, fileutil.NewFileManager())

	merged := 0
	err := filepath.WalkDir(*baseDir, func(pth string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || filepath.Ext(pth) != ".json" || pth == aggregatePath {
			return nil
		}

		bytes, err := os.ReadFile(pth)
		if err != nil {
			logger.Warnf("Failed to read fragment (%s): %s", pth, err)
			return nil
		}

		var record metadata.Record
		if err := json.Unmarshal(bytes, &record); err != nil || record.Description == "" {
			logger.Debugf("Skipping non-fragment JSON: %s", pth)
			return nil
		}

		if err := store.MergeIntoAggregate(record, aggregatePath); err != nil {
			return err
		}
		merged++
		logger.Debugf("Merged %s", pth)
		return nil
	})
	if err != nil {
		color.Red("Rebuild failed: %s", err)
		os.Exit(1)
	}

	color.Green("Rebuilt %s from %d fragment(s)", aggregatePath, merged)
}
