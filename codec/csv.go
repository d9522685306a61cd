/*
Package codec round-trips the flat parameter mapping through its two
exchange formats.

PURPOSE:
  Export lets a user snapshot an assessment's inputs; import restores
  them. Two formats:

  CSV:  header row "Parameter,Value,Description", one row per key.
        List-valued keys are flattened to key_<index> rows and reassembled
        on import by numeric suffix order.
  JSON: {metadata: {export_date, version, tool}, configuration: {...}}.
        Import also accepts a bare configuration object.

  Imported values arrive as strings; numeric-looking strings are coerced
  to int/float, everything else stays a string (config.Coerce owns that
  rule, applied again in config.FromMap so both entry paths agree).

SEE ALSO:
  - config package: key set, descriptions, typed Parameters
*/
package codec

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/warp/value-engine/config"
)

// ExportCSV writes the mapping as Parameter,Value,Description rows.
// Known scalar keys come first in stable export order, then any remaining
// keys (list-valued entries included) sorted by name.
func ExportCSV(params map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Parameter", "Value", "Description"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	written := map[string]bool{}
	for _, key := range config.Keys() {
		value, ok := params[key]
		if !ok {
			continue
		}
		if err := writeRow(w, key, value); err != nil {
			return nil, err
		}
		written[key] = true
	}

	var rest []string
	for key := range params {
		if !written[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		if err := writeRow(w, key, params[key]); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(w *csv.Writer, key string, value any) error {
	desc, ok := config.Descriptions[key]
	if !ok {
		desc = fallbackDescription(key)
	}
	if err := w.Write([]string{key, fmt.Sprintf("%v", value), desc}); err != nil {
		return fmt.Errorf("write csv row %q: %w", key, err)
	}
	return nil
}

// fallbackDescription turns an unknown key into a readable label.
func fallbackDescription(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ImportCSV parses Parameter,Value rows back into a mapping. The
// Description column is optional and ignored. Values are coerced from
// their string form.
func ImportCSV(r io.Reader) (map[string]any, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate 2- and 3-column rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse csv: empty input")
	}

	params := make(map[string]any, len(records)-1)
	for i, record := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(record[0]), "parameter") {
			continue // header row
		}
		if len(record) < 2 {
			continue
		}
		key := strings.TrimSpace(record[0])
		if key == "" {
			continue
		}
		params[key] = config.Coerce(record[1])
	}
	return params, nil
}
