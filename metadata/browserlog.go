package metadata

import (
	"strings"

	"github.com/hashicorp/go-version"
)

// Browsers known to implement the WebDriver log retrieval endpoint, with the
// first version that shipped it. Firefox dropped the endpoint with
// geckodriver, so it is absent on purpose.
var logCapableBrowsers = map[string]string{
	"chrome":        "4.0",
	"chromium":      "4.0",
	"msedge":        "79.0",
	"microsoftedge": "79.0",
	"opera":         "15.0",
}

// SupportsLogRetrieval reports whether browser console logs can be gathered
// for the environment described by the capabilities. An unparsable or missing
// browser version is treated as current.
func SupportsLogRetrieval(capabilities Capabilities) bool {
	name := strings.ToLower(capabilities.BrowserName())
	minimum, ok := logCapableBrowsers[name]
	if !ok {
		return false
	}

	current, err := version.NewVersion(capabilities.BrowserVersion())
	if err != nil {
		return true
	}

	threshold, err := version.NewVersion(minimum)
	if err != nil {
		return true
	}

	return current.GreaterThanOrEqual(threshold)
}
