package fits

import (
	"fmt"
	"io"

	"github.com/astrogo/fitsio"
	"github.com/rickbassham/fitsmeta/common"
)

type Decoder struct {
	rdr io.Reader
}

func NewDecoder(rdr io.Reader) *Decoder {
	return &Decoder{rdr: rdr}
}

// ReadHeader decodes the primary HDU and returns all of its cards.
// Malformed input is reported as an error, never as a panic.
func (d *Decoder) ReadHeader() (h common.Header, err error) {
	defer func() {
		if r := recover(); r != nil {
			h = nil
			err = fmt.Errorf("fits: corrupt header: %v", r)
		}
	}()

	fit, err := fitsio.Open(d.rdr)
	if err != nil {
		return nil, fmt.Errorf("fits: open: %w", err)
	}
	defer fit.Close()

	hdus := fit.HDUs()
	if len(hdus) == 0 {
		return nil, fmt.Errorf("fits: no header data units")
	}

	hdr := hdus[0].Header()

	h = common.Header{}

	for _, key := range hdr.Keys() {
		card := hdr.Get(key)
		if card == nil {
			continue
		}

		h[key] = card.Value
	}

	return h, nil
}
