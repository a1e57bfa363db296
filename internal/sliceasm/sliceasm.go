// Package sliceasm stitches the sequential strips a RAW file stores
// sensor rows in into one image buffer, quarantining per-slice failures
// so a single corrupted strip doesn't lose the rows around it.
package sliceasm

import (
	"fmt"

	"github.com/dtorop/rawspeed/internal/cursor"
	"github.com/dtorop/rawspeed/internal/errkind"
	"github.com/dtorop/rawspeed/internal/imgbuf"
	"github.com/dtorop/rawspeed/internal/packing"
	"github.com/dtorop/rawspeed/internal/rowsched"
)

// SliceDescriptor names one contiguous strip of sensor rows within the
// source file.
type SliceDescriptor struct {
	OffsetInFile int
	ByteCount    int
	RowCount     int
}

// Config carries the parameters every slice's packing decode shares.
type Config struct {
	Width              int
	BitsPerPixel       int
	Packing            packing.Descriptor
	SampleType         imgbuf.SampleType
	ComponentsPerPixel int

	Uncorrected bool
	LookupTable []uint16

	// Workers, when > 1, decodes a slice's rows across that many
	// goroutines via internal/rowsched — but only when the slice holds
	// every byte its rows need, so the graceful-truncation preamble
	// still runs exactly once, over the whole slice, with no per-band
	// ambiguity about how much of a partial last row to keep.
	Workers int
}

// Assemble validates slices against file, allocates the image buffer at
// (width, sum of valid row counts) with white_point derived from
// BitsPerPixel, and decodes each slice in order at its row offset.
//
// Invalid slices (byte range not contained in file) are dropped
// silently. If a slice's decode fails: on slice 0, a decode-format
// error propagates to the caller and an I/O-class error is wrapped
// into a fatal error with context; on any later slice, the error is
// appended to the buffer's error list and assembly continues.
func Assemble(file cursor.Range, slices []SliceDescriptor, cfg Config) (*imgbuf.Buffer, error) {
	cpp := cfg.ComponentsPerPixel
	if cpp == 0 {
		cpp = 1
	}

	fileCur := cursor.New(file)
	type validSlice struct {
		desc SliceDescriptor
		cur  *cursor.Cursor
	}
	var slicesInRange []validSlice
	for _, s := range slices {
		sc, err := fileCur.Sub(s.OffsetInFile, s.ByteCount)
		if err != nil {
			continue
		}
		slicesInRange = append(slicesInRange, validSlice{desc: s, cur: sc})
	}
	if len(slicesInRange) == 0 {
		return nil, fmt.Errorf("sliceasm: no valid slices found: %w", errkind.ErrTruncated)
	}

	totalRows := 0
	for _, v := range slicesInRange {
		totalRows += v.desc.RowCount
	}

	whitePoint := 0
	if cfg.SampleType != imgbuf.F32 {
		whitePoint = (1 << uint(cfg.BitsPerPixel)) - 1
	}

	buf, err := imgbuf.New(cfg.Width, totalRows, cpp, cfg.SampleType, whitePoint)
	if err != nil {
		return nil, fmt.Errorf("sliceasm: allocate image buffer: %w", err)
	}
	buf.Uncorrected = cfg.Uncorrected
	buf.LookupTable = cfg.LookupTable

	oy := 0
	for i, v := range slicesInRange {
		decErr := decodeSlice(cfg, v.cur, i, oy, v.desc.RowCount, buf)
		if decErr != nil {
			switch {
			case i > 0:
				buf.SetError(errkind.KindOf(decErr), fmt.Sprintf("slice %d: %v", i, decErr))
			case errkind.KindOf(decErr) == errkind.IOError:
				return nil, fmt.Errorf("sliceasm: slice 0 IO failure: %w", decErr)
			default:
				return nil, decErr
			}
		}
		oy += v.desc.RowCount
	}
	return buf, nil
}

// decodeSlice runs one slice's packing decode, either sequentially or,
// when cfg.Workers > 1 and the packing has a fixed per-row byte stride
// and the slice's cursor already holds every byte its rows need, by
// splitting the rows into bands and driving them through rowsched.
func decodeSlice(cfg Config, sliceCur *cursor.Cursor, sliceIndex, oy, rowCount int, buf *imgbuf.Buffer) error {
	cpp := cfg.ComponentsPerPixel
	if cpp == 0 {
		cpp = 1
	}

	if cfg.Workers > 1 && rowCount > 1 {
		if bytesPerRow, ok := packing.BytesPerRow(cfg.Packing, cfg.Width, cpp); ok && bytesPerRow > 0 {
			if sliceCur.Remaining() >= bytesPerRow*rowCount {
				return rowsched.Run(rowCount, cfg.Workers, buf, func(band rowsched.Band) error {
					bandCur, err := sliceCur.Sub(band.Start*bytesPerRow, band.Height*bytesPerRow)
					if err != nil {
						return err
					}
					randState := uint32(sliceIndex+1)*1000 + uint32(band.Start) + 1
					_, err = packing.Decode(cfg.Packing, bandCur, 0, oy+band.Start, cfg.Width, band.Height, buf, &randState)
					return err
				})
			}
		}
	}

	randState := uint32(sliceIndex + 1) // deterministic per-slice seed, spec §9
	_, err := packing.Decode(cfg.Packing, sliceCur, 0, oy, cfg.Width, rowCount, buf, &randState)
	return err
}
