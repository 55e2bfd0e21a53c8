package artifactstore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webdriverkit/screenshot-reporter/metadata"
)

func Test_GivenCyclicMap_WhenSanitizing_ThenCycleIsPrunedAndEncodable(t *testing.T) {
	// Given
	cyclic := map[string]interface{}{"name": "host object"}
	cyclic["self"] = cyclic

	// When
	sanitized := Sanitize(cyclic)

	// Then
	bytes, err := json.Marshal(sanitized)
	require.NoError(t, err)
	assert.Contains(t, string(bytes), "host object")

	asMap := sanitized.(map[string]interface{})
	assert.Nil(t, asMap["self"])
}

func Test_GivenCyclicPointerChain_WhenSanitizing_ThenEncodingSucceeds(t *testing.T) {
	// Given
	type node struct {
		Name string `json:"name"`
		Next *node  `json:"next,omitempty"`
	}
	first := &node{Name: "first"}
	second := &node{Name: "second", Next: first}
	first.Next = second

	// When
	sanitized := Sanitize(first)

	// Then
	_, err := json.Marshal(sanitized)
	require.NoError(t, err)
}

func Test_GivenSharedButAcyclicValue_WhenSanitizing_ThenBothOccurrencesSurvive(t *testing.T) {
	// Given
	shared := map[string]interface{}{"kind": "shared"}
	value := map[string]interface{}{"a": shared, "b": shared}

	// When
	sanitized := Sanitize(value).(map[string]interface{})

	// Then
	assert.NotNil(t, sanitized["a"])
	assert.NotNil(t, sanitized["b"])
}

func Test_GivenStructWithTags_WhenSanitizing_ThenTagNamesAndOmitEmptyApply(t *testing.T) {
	// Given
	value := struct {
		Visible string `json:"visible"`
		Skipped string `json:"-"`
		Empty   string `json:"empty,omitempty"`
		hidden  string
	}{Visible: "yes", Skipped: "no", hidden: "no"}

	// When
	sanitized := Sanitize(value).(map[string]interface{})

	// Then
	assert.Equal(t, "yes", sanitized["visible"])
	assert.NotContains(t, sanitized, "Skipped")
	assert.NotContains(t, sanitized, "empty")
	assert.NotContains(t, sanitized, "hidden")
}

func Test_GivenRecordWithCyclicDetails_WhenEncoding_ThenRoundTripKeepsAllFields(t *testing.T) {
	// Given
	details := map[string]interface{}{"page": "login"}
	details["self"] = details

	record := metadata.Record{
		Description:    "Login|should succeed",
		Passed:         true,
		OS:             "LINUX",
		SessionID:      "abc-123",
		Browser:        metadata.Browser{Name: "chrome", Version: "90"},
		Message:        "Passed",
		Duration:       2000,
		ScreenshotFile: "screenshots/abc.png",
		Details:        details,
	}

	// When
	bytes, err := encodeRecord(record)
	require.NoError(t, err)

	var decoded metadata.Record
	require.NoError(t, json.Unmarshal(bytes, &decoded))

	// Then
	decoded.Details = nil
	record.Details = nil
	assert.Equal(t, record, decoded)
}

func Test_GivenNilDetails_WhenEncodingRecords_ThenOutputIsAJSONArray(t *testing.T) {
	bytes, err := encodeRecords([]metadata.Record{{Description: "a"}, {Description: "b"}})
	require.NoError(t, err)

	var decoded []metadata.Record
	require.NoError(t, json.Unmarshal(bytes, &decoded))
	assert.Len(t, decoded, 2)
}
