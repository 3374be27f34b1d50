// Package output writes the chosen pane to stdout.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/timvw/pane-pick/internal/model"
)

// Format selects how a pane is printed.
type Format string

const (
	// FormatPlain prints the bare composite identifier.
	FormatPlain Format = "plain"
	// FormatJSON prints the full record as one JSON object.
	FormatJSON Format = "json"
)

// ParseFormat maps a --format value to a Format. Anything other than
// "json" is plain.
func ParseFormat(s string) Format {
	if s == string(FormatJSON) {
		return FormatJSON
	}
	return FormatPlain
}

// Write prints exactly one line describing p.
func Write(w io.Writer, p model.Pane, f Format) error {
	switch f {
	case FormatJSON:
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		_, err := fmt.Fprintln(w, p.FullID)
		return err
	}
}
