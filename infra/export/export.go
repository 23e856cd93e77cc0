// Package export writes the final event log of a run.
package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kilianp07/kitchen/core/model"
)

// Config selects the output destination.
type Config struct {
	// Path is the output file. Empty disables export.
	Path string `json:"path"`
	// Format is one of "jsonl", "json" or "csv".
	Format string `json:"format"`
}

// SetDefaults applies the jsonl format.
func (c *Config) SetDefaults() {
	if c.Format == "" {
		c.Format = "jsonl"
	}
}

// Validate checks the format name.
func (c Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "jsonl", "json", "csv":
		return nil
	default:
		return fmt.Errorf("unknown output format %s", c.Format)
	}
}

// Enabled reports whether an output path is configured.
func (c Config) Enabled() bool { return c.Path != "" }

// Run is the header attached to JSON exports.
type Run struct {
	RunID  string        `json:"run_id"`
	Seed   int64         `json:"seed"`
	Events []model.Event `json:"events"`
}

// WriteFile writes the events to cfg.Path in cfg.Format.
func WriteFile(cfg Config, run Run) (err error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(cfg.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	switch strings.ToLower(cfg.Format) {
	case "json":
		return WriteJSON(f, run)
	case "csv":
		return WriteCSV(f, run.Events)
	default:
		return WriteJSONL(f, run.Events)
	}
}

// WriteJSON writes the run as a single JSON document.
func WriteJSON(w io.Writer, run Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

// WriteJSONL writes one event per line.
func WriteJSONL(w io.Writer, events []model.Event) error {
	enc := json.NewEncoder(w)
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}

// ReadJSONL decodes events written by WriteJSONL. Malformed lines are an error.
func ReadJSONL(r io.Reader) ([]model.Event, error) {
	var res []model.Event
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var e model.Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		res = append(res, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// WriteCSV writes the events with a header row.
func WriteCSV(w io.Writer, events []model.Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "id", "action", "target"}); err != nil {
		return err
	}
	for _, e := range events {
		rec := []string{
			strconv.FormatInt(e.Timestamp.UnixMicro(), 10),
			e.OrderID,
			string(e.Kind),
			string(e.Target),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
