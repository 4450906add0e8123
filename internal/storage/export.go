package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/chrono/internal/models"
	"github.com/misterclayt0n/chrono/internal/utils"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

var ExportFormats = []string{FormatText, FormatJSON, FormatTOML, FormatYAML, FormatCSV}

// LapRecord is one exported lap. Number 1 is the oldest lap.
type LapRecord struct {
	Number  int    `json:"lap" toml:"lap" yaml:"lap"`
	TotalMs int64  `json:"totalMs" toml:"total_ms" yaml:"total_ms"`
	SplitMs int64  `json:"splitMs" toml:"split_ms" yaml:"split_ms"`
	Total   string `json:"total" toml:"total" yaml:"total"`
	Split   string `json:"split" toml:"split" yaml:"split"`
}

type lapDump struct {
	Laps []LapRecord `json:"laps" toml:"laps" yaml:"laps"`
}

// LapRecords converts a newest-first lap list into numbered records, oldest
// first.
func LapRecords(laps []models.Lap) []LapRecord {
	records := make([]LapRecord, 0, len(laps))
	for i := len(laps) - 1; i >= 0; i-- {
		lap := laps[i]
		records = append(records, LapRecord{
			Number:  len(laps) - i,
			TotalMs: lap.Total.Milliseconds(),
			SplitMs: lap.Split.Milliseconds(),
			Total:   utils.FormatClock(lap.Total),
			Split:   utils.FormatClock(lap.Split),
		})
	}
	return records
}

// ExportLaps writes the laps to w in the given format.
func ExportLaps(w io.Writer, format string, laps []models.Lap) error {
	dump := lapDump{Laps: LapRecords(laps)}

	switch strings.ToLower(format) {
	case FormatText, "":
		for _, r := range dump.Laps {
			if _, err := fmt.Fprintf(w, "#%d\t%s\t%s\n", r.Number, r.Split, r.Total); err != nil {
				return err
			}
		}
		return nil

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dump)

	case FormatTOML:
		return toml.NewEncoder(w).Encode(dump)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(dump); err != nil {
			return err
		}
		return enc.Close()

	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"lap", "total_ms", "split_ms", "total", "split"}); err != nil {
			return err
		}
		for _, r := range dump.Laps {
			row := []string{
				strconv.Itoa(r.Number),
				strconv.FormatInt(r.TotalMs, 10),
				strconv.FormatInt(r.SplitMs, 10),
				r.Total,
				r.Split,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()

	default:
		return fmt.Errorf("unknown export format %q (want one of %s)", format, strings.Join(ExportFormats, ", "))
	}
}
