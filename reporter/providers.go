package reporter

import (
	"context"

	"github.com/webdriverkit/screenshot-reporter/metadata"
)

// CapabilityProvider supplies the environment descriptor of the browser
// session a spec ran in.
type CapabilityProvider interface {
	Capabilities(ctx context.Context) (metadata.Capabilities, error)
}

// ScreenshotProvider captures the current browser state as raw image bytes.
type ScreenshotProvider interface {
	TakeScreenshot(ctx context.Context) ([]byte, error)
}

// BrowserLogProvider drains the browser console log. Optional: only consulted
// when log gathering is enabled and the browser supports retrieval.
type BrowserLogProvider interface {
	BrowserLogs(ctx context.Context) ([]metadata.LogEntry, error)
}

// Providers bundles the host-side collaborators the reporter delegates to.
type Providers struct {
	Capabilities CapabilityProvider
	Screenshots  ScreenshotProvider
	BrowserLogs  BrowserLogProvider
}
