// Package rowsched partitions an image's rows into disjoint bands and
// drives one worker goroutine per band over a shared image buffer,
// joining before reporting a partial or fatal result.
package rowsched

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dtorop/rawspeed/internal/errkind"
	"github.com/dtorop/rawspeed/internal/imgbuf"
)

// Band is a contiguous row range [Start, Start+Height) assigned to one
// worker.
type Band struct {
	Start  int
	Height int
}

// Bands partitions [0, h) into contiguous bands of ceil(h/threads)
// rows each, where threads = min(h, workers), the last one clipped to
// h. It returns at most threads bands; when the rounded-up band height
// covers h early (e.g. h=9, workers=4 gives 3 bands of 3), fewer are
// returned, and no empty band is ever produced.
func Bands(h, workers int) []Band {
	if h <= 0 {
		return nil
	}
	threads := workers
	if threads > h {
		threads = h
	}
	if threads < 1 {
		threads = 1
	}
	bandHeight := (h + threads - 1) / threads

	bands := make([]Band, 0, threads)
	for start := 0; start < h; start += bandHeight {
		height := bandHeight
		if start+height > h {
			height = h - start
		}
		bands = append(bands, Band{Start: start, Height: height})
	}
	return bands
}

// Run fans decodeBand out across one goroutine per band of
// Bands(h, workers), then joins. A band's error never poisons its
// peers: it is appended to buf's error list unless every band failed,
// in which case Run itself returns a fatal error joining all of them
// (spec §4.6, grounded on RawDecoder.cpp's `errors.size() >= threads`
// rule).
func Run(h, workers int, buf *imgbuf.Buffer, decodeBand func(band Band) error) error {
	bands := Bands(h, workers)
	if len(bands) == 0 {
		return fmt.Errorf("rowsched: zero rows: %w", errkind.ErrInternalError)
	}

	errs := make([]error, len(bands))
	var wg sync.WaitGroup
	for i, band := range bands {
		wg.Add(1)
		go func(i int, band Band) {
			defer wg.Done()
			errs[i] = decodeBand(band)
		}(i, band)
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed >= len(bands) {
		return fmt.Errorf("rowsched: all %d workers failed: %w", failed, errors.Join(errs...))
	}

	for i, err := range errs {
		if err == nil {
			continue
		}
		b := bands[i]
		buf.SetError(errkind.KindOf(err), fmt.Sprintf("band %d [%d,%d): %v", i, b.Start, b.Start+b.Height, err))
	}
	return nil
}
