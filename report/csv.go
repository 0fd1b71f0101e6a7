package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/rickbassham/fitsmeta/metadata"
)

// DefaultPath is where the summary is written when no output is given.
const DefaultPath = "fits_metadata_summary.csv"

// Columns is the header row of the summary, in output order.
var Columns = []string{"Filename", "RA", "Dec", "Exposure_Time", "Observation_Date"}

// WriteCSV writes the header row followed by one row per record, in order.
func WriteCSV(w io.Writer, records []metadata.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Filename,
			rec.RA.String(),
			rec.Dec.String(),
			rec.ExposureTime.String(),
			rec.ObservationDate.String(),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write %s: %w", rec.Filename, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush: %w", err)
	}

	return nil
}

// Write saves records to path, replacing any existing file, and reports the
// outcome to out. With no records nothing is written and Write returns
// false. Paths ending in .zst are zstd-compressed.
func Write(path string, records []metadata.Record, out io.Writer) (bool, error) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No valid metadata to write to CSV")
		return false, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("report: create %s: %w", path, err)
	}

	if err := writeTo(f, path, records); err != nil {
		f.Close()
		return false, err
	}

	if err := f.Close(); err != nil {
		return false, fmt.Errorf("report: close %s: %w", path, err)
	}

	fmt.Fprintf(out, "Metadata saved to %s\n", path)

	return true, nil
}

func writeTo(f *os.File, path string, records []metadata.Record) error {
	if !strings.HasSuffix(path, ".zst") {
		return WriteCSV(f, records)
	}

	enc, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("report: zstd %s: %w", path, err)
	}

	if err := WriteCSV(enc, records); err != nil {
		enc.Close()
		return err
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: zstd %s: %w", path, err)
	}

	return nil
}
