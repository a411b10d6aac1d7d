// Package output renders players, player detail and summary stats for the
// terminal or for machine consumption.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vijay-prabhu/portalfit/internal/export"
	"github.com/vijay-prabhu/portalfit/internal/filter"
	"github.com/vijay-prabhu/portalfit/internal/roster"
)

// Formats accepted by Output
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// JSON writes data as indented JSON to stdout
func JSON(data interface{}) error {
	return JSONTo(os.Stdout, data)
}

// JSONTo writes data as indented JSON to the given writer. Stats gain their
// insight sentences.
func JSONTo(w io.Writer, data interface{}) error {
	if s, ok := data.(*filter.Stats); ok {
		data = struct {
			*filter.Stats
			Insights []string `json:"insights"`
		}{s, filter.Insights(*s)}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Output writes data to stdout in the specified format
func Output(format string, data interface{}) error {
	return OutputTo(os.Stdout, format, data)
}

// OutputTo writes data to w in the specified format. CSV is only defined
// for player lists.
func OutputTo(w io.Writer, format string, data interface{}) error {
	switch format {
	case FormatJSON:
		return JSONTo(w, data)
	case FormatTable, "":
		return TableTo(w, data)
	case FormatCSV:
		players, ok := data.([]roster.Player)
		if !ok {
			return fmt.Errorf("csv output is only available for player lists, got %T", data)
		}
		if err := export.Write(w, players); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
