package artifactstore

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/webdriverkit/screenshot-reporter/metadata"
)

// Options ...
type Options struct {
	DocTitle        string
	DocName         string
	CSSOverrideFile string
}

// Store persists per-spec artifacts and maintains the run-wide aggregate
// metadata file. Merges into the same aggregate are serialized in-process, so
// out-of-order completion of two specs' reporting continuations cannot lose
// an update.
type Store interface {
	SaveScreenshot(data []byte, pth string) error
	SaveMetadataFragment(record metadata.Record, pth string) error
	MergeIntoAggregate(record metadata.Record, aggregatePath string) error
	LoadAggregate(aggregatePath string) error
}

type store struct {
	opts        Options
	logger      log.Logger
	fileManager fileutil.FileManager

	mu            sync.Mutex
	aggregate     []metadata.Record
	assetsWritten bool
}

// NewStore ...
func NewStore(opts Options, logger log.Logger, fileManager fileutil.FileManager) Store {
	return &store{
		opts:        opts,
		logger:      logger,
		fileManager: fileManager,
	}
}

// SaveScreenshot writes raw screenshot bytes, creating missing parent
// directories. An existing file at the path is overwritten: user naming
// functions may reuse names on purpose to keep only the latest capture.
func (s *store) SaveScreenshot(data []byte, pth string) error {
	if err := os.MkdirAll(filepath.Dir(pth), 0700); err != nil {
		return fmt.Errorf("failed to create directory (%s): %w", filepath.Dir(pth), err)
	}
	if err := s.fileManager.WriteBytes(pth, data); err != nil {
		return fmt.Errorf("failed to write screenshot (%s): %w", pth, err)
	}
	return nil
}

// SaveMetadataFragment writes the standalone per-spec metadata document. The
// fragment is the durable per-spec audit record, independent of the
// aggregate.
func (s *store) SaveMetadataFragment(record metadata.Record, pth string) error {
	bytes, err := encodeRecord(record)
	if err != nil {
		return fmt.Errorf("could not encode metadata: %w", err)
	}
	if err := s.fileManager.Write(pth, string(bytes), 0600); err != nil {
		return fmt.Errorf("failed to write metadata fragment (%s): %w", pth, err)
	}
	return nil
}

// MergeIntoAggregate adds the record to the run-wide aggregate and rewrites
// the aggregate file. Records are keyed by description chain: re-running a
// spec with the same name replaces its prior entry instead of duplicating
// it. Viewer assets are refreshed on the first write of a run.
func (s *store) MergeIntoAggregate(record metadata.Record, aggregatePath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.aggregate {
		if s.aggregate[i].Description == record.Description {
			s.aggregate[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		s.aggregate = append(s.aggregate, record)
	}

	if !s.assetsWritten {
		if err := s.writeViewerAssets(filepath.Dir(aggregatePath), filepath.Base(aggregatePath)); err != nil {
			s.logger.Warnf("Failed to write report viewer assets: %s", err)
		}
		s.assetsWritten = true
	}

	bytes, err := encodeRecords(s.aggregate)
	if err != nil {
		return fmt.Errorf("could not encode aggregate metadata: %w", err)
	}
	if err := s.fileManager.Write(aggregatePath, string(bytes), 0600); err != nil {
		return fmt.Errorf("failed to write aggregate metadata (%s): %w", aggregatePath, err)
	}
	return nil
}

// LoadAggregate preloads the aggregate from a previous run, so new results
// merge into it instead of starting over. A missing file is not an error: the
// first run starts empty.
func (s *store) LoadAggregate(aggregatePath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reader, err := s.fileManager.OpenReaderIfExists(aggregatePath)
	if err != nil {
		return fmt.Errorf("failed to open aggregate metadata (%s): %w", aggregatePath, err)
	}
	if reader == nil {
		return nil
	}

	bytes, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read aggregate metadata (%s): %w", aggregatePath, err)
	}

	var records []metadata.Record
	if err := json.Unmarshal(bytes, &records); err != nil {
		return fmt.Errorf("failed to parse aggregate metadata (%s): %w", aggregatePath, err)
	}

	s.aggregate = records
	s.logger.Debugf("Loaded %d existing aggregate entries from %s", len(records), aggregatePath)
	return nil
}
