package metadata

import (
	"strings"
	"time"
)

// Status is the spec outcome as reported by a jasmine2-style host.
type Status string

// Spec statuses ...
const (
	StatusPassed   Status = "passed"
	StatusFailed   Status = "failed"
	StatusPending  Status = "pending"
	StatusDisabled Status = "disabled"
)

// Expectation is a single assertion outcome within a spec.
type Expectation struct {
	Passed  bool
	Message string
	Stack   string
}

// SpecResult is the jasmine2-shape result of one executed spec.
type SpecResult struct {
	Description        string
	Status             Status
	PendingReason      string
	PassedExpectations []Expectation
	FailedExpectations []Expectation
	Started            time.Time
	Stopped            time.Time
}

// LegacySuite is the explicit parent-suite linkage carried by the legacy
// result shape, innermost suite first.
type LegacySuite struct {
	Description string
	Parent      *LegacySuite
}

// LegacySpecResult is the single-callback (pre-jasmine2) result shape.
// Status is not stored directly: it is derived from the item collection.
type LegacySpecResult struct {
	Description string
	Suite       *LegacySuite
	Skipped     bool
	Items       []Expectation
	Started     time.Time
	Stopped     time.Time
}

// SuiteChain walks the parent-suite linkage and returns the suite
// descriptions outermost first.
func (r LegacySpecResult) SuiteChain() []string {
	var reversed []string
	for suite := r.Suite; suite != nil; suite = suite.Parent {
		reversed = append(reversed, suite.Description)
	}

	chain := make([]string, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		chain = append(chain, reversed[i])
	}
	return chain
}

// Passed reports whether every item of the spec passed.
func (r LegacySpecResult) Passed() bool {
	for _, item := range r.Items {
		if !item.Passed {
			return false
		}
	}
	return true
}

// Capabilities is the opaque environment descriptor supplied by the host.
// Lookups tolerate missing keys: an absent field maps to an empty string.
type Capabilities map[string]interface{}

func (c Capabilities) stringValue(key string) string {
	value, ok := c[key]
	if !ok {
		return ""
	}
	str, ok := value.(string)
	if !ok {
		return ""
	}
	return str
}

// Platform ...
func (c Capabilities) Platform() string {
	return c.stringValue("platform")
}

// SessionID ...
func (c Capabilities) SessionID() string {
	return c.stringValue("webdriver.remote.sessionid")
}

// BrowserName ...
func (c Capabilities) BrowserName() string {
	return c.stringValue("browserName")
}

// BrowserVersion ...
func (c Capabilities) BrowserVersion() string {
	if version := c.stringValue("version"); version != "" {
		return version
	}
	return c.stringValue("browserVersion")
}

// Browser identifies the browser a spec ran in.
type Browser struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// LogEntry is a single captured browser console entry.
type LogEntry struct {
	Level     string `json:"level"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// Record is the normalized, serializable outcome of one spec combined with
// the capabilities it ran under. ScreenshotFile is set only when a screenshot
// was actually captured for the spec.
type Record struct {
	Description    string     `json:"description"`
	Passed         bool       `json:"passed"`
	Pending        bool       `json:"pending"`
	OS             string     `json:"os,omitempty"`
	SessionID      string     `json:"sessionId,omitempty"`
	Browser        Browser    `json:"browser"`
	Message        string     `json:"message"`
	Trace          string     `json:"trace"`
	Duration       int64      `json:"duration"`
	BrowserLogs    []LogEntry `json:"browserLogs,omitempty"`
	ScreenshotFile string     `json:"screenShotFile,omitempty"`

	// Details carries optional context attached by custom metadata builders.
	// Host objects placed here may be self-referential; the artifact store
	// prunes cycles before serializing.
	Details interface{} `json:"details,omitempty"`
}

// JoinDescriptions builds the description chain key for a spec: the suite
// chain plus the spec name, outermost suite first.
func JoinDescriptions(descriptions []string) string {
	return strings.Join(descriptions, "|")
}

func durationMillis(started, stopped time.Time) int64 {
	if stopped.Before(started) {
		return 0
	}
	return stopped.Sub(started).Milliseconds()
}
