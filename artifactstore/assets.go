package artifactstore

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
)

//go:embed assets/report.html
var defaultReportHTML string

//go:embed assets/style.css
var defaultStylesheet string

type viewerData struct {
	Title         string
	Stylesheet    string
	AggregateFile string
}

// writeViewerAssets places the static report viewer (HTML document plus
// stylesheet) next to the aggregate file. A configured stylesheet override
// replaces the embedded default; if it cannot be read the default is kept.
func (s *store) writeViewerAssets(dir, aggregateFile string) error {
	docName := s.opts.DocName
	cssName := strings.TrimSuffix(docName, filepath.Ext(docName)) + ".css"

	stylesheet := defaultStylesheet
	if s.opts.CSSOverrideFile != "" {
		override, err := os.ReadFile(s.opts.CSSOverrideFile)
		if err != nil {
			s.logger.Warnf("Failed to read CSS override file (%s), using the default stylesheet: %s", s.opts.CSSOverrideFile, err)
		} else {
			stylesheet = string(override)
		}
	}

	tmpl, err := template.New("report").Parse(defaultReportHTML)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	var rendered bytes.Buffer
	err = tmpl.Execute(&rendered, viewerData{
		Title:         s.opts.DocTitle,
		Stylesheet:    cssName,
		AggregateFile: aggregateFile,
	})
	if err != nil {
		return fmt.Errorf("failed to render report document: %w", err)
	}

	if err := s.fileManager.Write(filepath.Join(dir, docName), rendered.String(), 0600); err != nil {
		return fmt.Errorf("failed to write report document: %w", err)
	}
	if err := s.fileManager.Write(filepath.Join(dir, cssName), stylesheet, 0600); err != nil {
		return fmt.Errorf("failed to write report stylesheet: %w", err)
	}
	return nil
}
