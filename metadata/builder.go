package metadata

import "time"

// Fallback messages used when the host result carries no usable detail.
const (
	passedMessage  = "Passed"
	pendingMessage = "Pending"
	failedMessage  = "Failed"
	noTraceMessage = "No Stack trace information"
)

// Builder produces a Record from a jasmine2-shape spec result.
type Builder func(descriptions []string, result SpecResult, capabilities Capabilities) Record

// LegacyBuilder produces a Record from a legacy-shape spec result.
type LegacyBuilder func(descriptions []string, result LegacySpecResult, capabilities Capabilities) Record

// Build is the default jasmine2 metadata builder. It is a pure function of
// its inputs and tolerates missing capability keys and empty expectation
// lists.
func Build(descriptions []string, result SpecResult, capabilities Capabilities) Record {
	record := newRecord(descriptions, capabilities, result.Started, result.Stopped)

	switch result.Status {
	case StatusPassed:
		record.Passed = true
		record.Message = passedMessage
		if len(result.PassedExpectations) > 0 {
			first := result.PassedExpectations[0]
			if first.Message != "" {
				record.Message = first.Message
			}
			record.Trace = first.Stack
		}
	case StatusPending, StatusDisabled:
		record.Pending = true
		record.Message = pendingMessage
		if result.PendingReason != "" {
			record.Message = result.PendingReason
		}
	default:
		record.Message = failedMessage
		record.Trace = noTraceMessage
		if len(result.FailedExpectations) > 0 {
			first := result.FailedExpectations[0]
			if first.Message != "" {
				record.Message = first.Message
			}
			if first.Stack != "" {
				record.Trace = first.Stack
			}
		}
	}

	return record
}

// BuildLegacy is the default legacy metadata builder: the spec status is
// derived from the item collection, and on failure the first failing item
// provides the message and trace.
func BuildLegacy(descriptions []string, result LegacySpecResult, capabilities Capabilities) Record {
	record := newRecord(descriptions, capabilities, result.Started, result.Stopped)

	if result.Skipped {
		record.Pending = true
		record.Message = pendingMessage
		return record
	}

	if result.Passed() {
		record.Passed = true
		record.Message = passedMessage
		if len(result.Items) > 0 {
			first := result.Items[0]
			if first.Message != "" {
				record.Message = first.Message
			}
			record.Trace = first.Stack
		}
		return record
	}

	record.Message = failedMessage
	record.Trace = noTraceMessage
	for _, item := range result.Items {
		if item.Passed {
			continue
		}
		if item.Message != "" {
			record.Message = item.Message
		}
		if item.Stack != "" {
			record.Trace = item.Stack
		}
		break
	}
	return record
}

func newRecord(descriptions []string, capabilities Capabilities, started, stopped time.Time) Record {
	return Record{
		Description: JoinDescriptions(descriptions),
		OS:          capabilities.Platform(),
		SessionID:   capabilities.SessionID(),
		Browser: Browser{
			Name:    capabilities.BrowserName(),
			Version: capabilities.BrowserVersion(),
		},
		Duration: durationMillis(started, stopped),
	}
}
