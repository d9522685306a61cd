/*
json.go - JSON export/import of the parameter mapping

Wraps the flat mapping in an envelope with export metadata. Import
accepts both the wrapped envelope and a bare configuration object, and
coerces stringly numbers either way.
*/
package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/warp/value-engine/config"
)

// ExportVersion identifies the export schema.
const ExportVersion = "1.0"

// ExportTool names the producer in export metadata.
const ExportTool = "value-engine business value assessment"

// Envelope is the JSON export wrapper.
type Envelope struct {
	Metadata      Metadata       `json:"metadata"`
	Configuration map[string]any `json:"configuration"`
}

// Metadata describes one export.
type Metadata struct {
	ExportDate string `json:"export_date"`
	Version    string `json:"version"`
	Tool       string `json:"tool"`
}

// ExportJSON wraps the mapping with metadata and marshals it indented.
func ExportJSON(params map[string]any) ([]byte, error) {
	env := Envelope{
		Metadata: Metadata{
			ExportDate: time.Now().UTC().Format(time.RFC3339),
			Version:    ExportVersion,
			Tool:       ExportTool,
		},
		Configuration: params,
	}
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return out, nil
}

// ImportJSON parses either the wrapped envelope or a bare configuration
// object into a mapping with coerced values.
func ImportJSON(data []byte) (map[string]any, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Configuration != nil {
		return coerceAll(env.Configuration), nil
	}

	var bare map[string]any
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("parse json configuration: %w", err)
	}
	return coerceAll(bare), nil
}

func coerceAll(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = config.Coerce(v)
	}
	return out
}
