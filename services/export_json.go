package services

import (
	"encoding/json"
	"fmt"
	"time"
)

// MarshalPayload serializes the payload as pretty-printed JSON, the exact
// bytes handed to the download mechanism.
func MarshalPayload(p Payload) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return data, nil
}

// ExportFilename returns the download name for a JSON export performed at
// t, e.g. "rfq_2026-08-26.json".
func ExportFilename(t time.Time) string {
	return "rfq_" + t.Format("2006-01-02") + ".json"
}
