package metadata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rickbassham/fitsmeta/common"
	"github.com/rickbassham/fitsmeta/fits"
)

// Header keywords read from each file.
const (
	KeyRA              = "RA"
	KeyDec             = "DEC"
	KeyExposureTime    = "EXPTIME"
	KeyObservationDate = "DATE-OBS"
)

// Record is the summary of one FITS file. Every field is always set;
// keywords missing from the header hold common.NA.
type Record struct {
	Filename        string
	RA              common.Value
	Dec             common.Value
	ExposureTime    common.Value
	ObservationDate common.Value
}

// Batch is the outcome of running Extract over a list of files.
type Batch struct {
	Records []Record
	Found   int
	Skipped int
}

// NewRecord builds a Record for filename from a decoded primary header.
func NewRecord(filename string, hdr common.Header) Record {
	return Record{
		Filename:        filepath.Base(filename),
		RA:              hdr.Get(KeyRA, common.NA),
		Dec:             hdr.Get(KeyDec, common.NA),
		ExposureTime:    hdr.Get(KeyExposureTime, common.NA),
		ObservationDate: hdr.Get(KeyObservationDate, common.NA),
	}
}

// Extract reads the primary header of the FITS file at path. The file is
// closed before Extract returns, whatever the outcome.
func Extract(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, err
	}
	defer f.Close()

	hdr, err := fits.NewDecoder(f).ReadHeader()
	if err != nil {
		return Record{}, err
	}

	if zerolog.GlobalLevel() <= zerolog.TraceLevel {
		for key, val := range hdr {
			log.Trace().Str("file", path).Str("key", key).Str("value", common.NewValue(val).String()).Msg("header")
		}
	}

	return NewRecord(path, hdr), nil
}

// Collect extracts a Record from each path in order. A file that cannot be
// read is reported to out and skipped; it never stops the batch.
func Collect(paths []string, out io.Writer) Batch {
	b := Batch{
		Records: make([]Record, 0, len(paths)),
		Found:   len(paths),
	}

	for _, path := range paths {
		log.Debug().Str("file", path).Msg("processing file")

		rec, err := Extract(path)
		if err != nil {
			fmt.Fprintf(out, "Error processing %s: %s\n", path, err.Error())
			b.Skipped++
			continue
		}

		b.Records = append(b.Records, rec)
	}

	return b
}
