package pathresolver

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/webdriverkit/screenshot-reporter/metadata"
)

// NamingFunc returns the artifact base name for a spec. The name may contain
// nested path segments to group specs into subfolders; everything resolves
// relative to the configured base directory.
type NamingFunc func(descriptions []string, capabilities metadata.Capabilities) string

// DefaultNaming returns a fresh random identifier, so artifact paths never
// collide across specs in the same run.
func DefaultNaming(descriptions []string, capabilities metadata.Capabilities) string {
	return uuid.New().String()
}

// ArtifactPaths holds the per-spec output locations derived from one base
// name.
type ArtifactPaths struct {
	Screenshot       string
	MetadataFragment string
}

// Resolver computes artifact paths under a base directory, honoring the
// configured subfolders.
type Resolver interface {
	Resolve(baseName string) ArtifactPaths
	AggregatePath() string
}

type resolver struct {
	baseDirectory        string
	screenshotsSubfolder string
	jsonsSubfolder       string
	docName              string
}

// NewResolver ...
func NewResolver(baseDirectory, screenshotsSubfolder, jsonsSubfolder, docName string) Resolver {
	return resolver{
		baseDirectory:        baseDirectory,
		screenshotsSubfolder: screenshotsSubfolder,
		jsonsSubfolder:       jsonsSubfolder,
		docName:              docName,
	}
}

func (r resolver) Resolve(baseName string) ArtifactPaths {
	name := containName(baseName)
	if name == "" {
		name = uuid.New().String()
	}

	dir := path.Dir(name)
	if dir == "." {
		dir = ""
	}
	base := path.Base(name)

	return ArtifactPaths{
		Screenshot:       filepath.Join(r.baseDirectory, filepath.FromSlash(dir), r.screenshotsSubfolder, base+".png"),
		MetadataFragment: filepath.Join(r.baseDirectory, filepath.FromSlash(dir), r.jsonsSubfolder, base+".json"),
	}
}

// AggregatePath is the run-wide combined metadata file: the JSON companion of
// the configured report document, directly under the base directory.
func (r resolver) AggregatePath() string {
	name := strings.TrimSuffix(r.docName, filepath.Ext(r.docName))
	return filepath.Join(r.baseDirectory, name+".json")
}

// containName normalizes a user-supplied base name so the resulting paths
// stay inside the base directory: traversal segments resolve against an
// imaginary root and absolute prefixes are stripped, and characters
// unsupported in filenames are replaced per segment.
func containName(name string) string {
	name = filepath.ToSlash(name)
	name = path.Clean("/" + name)
	name = strings.TrimPrefix(name, "/")

	segments := strings.Split(name, "/")
	for i, segment := range segments {
		segments[i] = replaceUnsupportedFilenameCharacters(segment)
	}
	return strings.Join(segments, "/")
}

// Replaces ':', which is unsupported in filenames on macOS.
func replaceUnsupportedFilenameCharacters(s string) string {
	return strings.Replace(s, ":", "-", -1)
}
