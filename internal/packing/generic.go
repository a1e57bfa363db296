package packing

import (
	"fmt"

	"github.com/dtorop/rawspeed/internal/bitpump"
	"github.com/dtorop/rawspeed/internal/cursor"
	"github.com/dtorop/rawspeed/internal/errkind"
	"github.com/dtorop/rawspeed/internal/imgbuf"
)

// decodeGeneric drives a BitPump for any bit depth that has no
// dedicated fast decoder: one component value at a time, skipping the
// row's trailing alignment padding once every component is read.
func decodeGeneric(desc Descriptor, cur *cursor.Cursor, ox, oy, w, h int, buf *imgbuf.Buffer) (int, error) {
	if desc.BitsPerPixel <= 0 {
		return 0, fmt.Errorf("packing: generic bits_per_pixel %d invalid: %w", desc.BitsPerPixel, errkind.ErrInvalidParameter)
	}
	if desc.BitsPerPixel > 16 && buf.SampleType() == imgbuf.U16 {
		return 0, fmt.Errorf("packing: generic bits_per_pixel %d exceeds U16 buffer: %w", desc.BitsPerPixel, errkind.ErrUnsupportedBitDepth)
	}
	if desc.InputPitch <= 0 {
		return 0, fmt.Errorf("packing: generic input_pitch %d invalid: %w", desc.InputPitch, errkind.ErrInvalidParameter)
	}

	cpp := buf.ComponentsPerPixel()
	rowBits := w * cpp * desc.BitsPerPixel
	if rowBits > desc.InputPitch*8 {
		return 0, fmt.Errorf("packing: generic row of %d bits exceeds input_pitch: %w", rowBits, errkind.ErrInvalidParameter)
	}
	skipBits := uint(desc.InputPitch*8 - rowBits)

	actualH, err := truncationPreamble(cur, desc.InputPitch, h, buf)
	if err != nil {
		return 0, err
	}

	for row := 0; row < actualH; row++ {
		rowBytes, err := cur.Consume(desc.InputPitch)
		if err != nil {
			return 0, fmt.Errorf("packing: generic row %d: %w", row, err)
		}
		pump := bitpump.New(cursor.FromBytes(rowBytes), desc.BitOrder)

		dst := buf.RowU16(oy + row)
		for i := 0; i < w*cpp; i++ {
			v, err := pump.GetBits(uint(desc.BitsPerPixel))
			if err != nil {
				return 0, fmt.Errorf("packing: generic row %d sample %d: %w", row, i, err)
			}
			dst[ox*cpp+i] = uint16(v)
		}
		if skipBits > 0 {
			if err := pump.SkipBits(skipBits); err != nil {
				return 0, fmt.Errorf("packing: generic row %d padding skip: %w", row, err)
			}
		}
		if err := pump.CheckPosition(); err != nil {
			return 0, err
		}
	}
	return actualH, nil
}
