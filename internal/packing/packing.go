// Package packing implements the catalogue of fixed RAW sensor sample
// packings: the byte/bit arrangements a camera may use to store pixel
// samples in a strip, and the generic bit-pump path for arbitrary bit
// depths that don't have a dedicated fast decoder.
package packing

import (
	"fmt"

	"github.com/dtorop/rawspeed/internal/bitpump"
	"github.com/dtorop/rawspeed/internal/cursor"
	"github.com/dtorop/rawspeed/internal/errkind"
	"github.com/dtorop/rawspeed/internal/imgbuf"
)

// Tag identifies one packing from the spec's catalogue.
type Tag int

const (
	Raw8 Tag = iota
	Raw12LEPacked
	Raw12LEPackedCtrl10
	Raw12BEPacked
	Raw12BEPackedCtrl10
	Raw12BEInterlaced
	Raw12BEUnpacked
	Raw12BEUnpackedLeftAligned
	Raw12LEUnpacked
	Raw14BEUnpacked
	Raw16LEUnpacked
	Raw16BEUnpacked
	Float32
	Generic
)

// String names a Tag for diagnostics.
func (t Tag) String() string {
	switch t {
	case Raw8:
		return "Raw8"
	case Raw12LEPacked:
		return "Raw12_LE_Packed"
	case Raw12LEPackedCtrl10:
		return "Raw12_LE_PackedCtrl10"
	case Raw12BEPacked:
		return "Raw12_BE_Packed"
	case Raw12BEPackedCtrl10:
		return "Raw12_BE_PackedCtrl10"
	case Raw12BEInterlaced:
		return "Raw12_BE_Interlaced"
	case Raw12BEUnpacked:
		return "Raw12_BE_Unpacked"
	case Raw12BEUnpackedLeftAligned:
		return "Raw12_BE_UnpackedLeftAligned"
	case Raw12LEUnpacked:
		return "Raw12_LE_Unpacked"
	case Raw14BEUnpacked:
		return "Raw14_BE_Unpacked"
	case Raw16LEUnpacked:
		return "Raw16_LE_Unpacked"
	case Raw16BEUnpacked:
		return "Raw16_BE_Unpacked"
	case Float32:
		return "Float32"
	case Generic:
		return "Generic"
	default:
		return "Unknown"
	}
}

// Descriptor selects a packing and carries the parameters the Generic
// tag needs (spec §4.4, §6).
type Descriptor struct {
	Tag Tag

	// BitsPerPixel, BitOrder and InputPitch are consulted only when
	// Tag == Generic.
	BitsPerPixel int
	BitOrder     bitpump.Order
	InputPitch   int
}

// Decode decodes up to h rows of the packing named by desc, starting at
// column ox / row oy of buf, reading from cur. It returns the number of
// rows actually decoded — less than h only when the input was
// gracefully truncated (§4.4 preamble) — and a non-nil error only for
// fatal conditions.
func Decode(desc Descriptor, cur *cursor.Cursor, ox, oy, w, h int, buf *imgbuf.Buffer, randState *uint32) (int, error) {
	if desc.Tag == Float32 {
		if buf.SampleType() != imgbuf.F32 {
			return 0, fmt.Errorf("packing: %s needs an F32 buffer, got %v: %w", desc.Tag, buf.SampleType(), errkind.ErrInvalidParameter)
		}
	} else if buf.SampleType() != imgbuf.U16 {
		return 0, fmt.Errorf("packing: %s needs a U16 buffer, got %v: %w", desc.Tag, buf.SampleType(), errkind.ErrInvalidParameter)
	}
	switch desc.Tag {
	case Raw8:
		return decodeRaw8(cur, ox, oy, w, h, buf, randState)
	case Raw12LEPacked:
		return decodeRaw12Packed(cur, ox, oy, w, h, buf, false, false)
	case Raw12LEPackedCtrl10:
		return decodeRaw12Packed(cur, ox, oy, w, h, buf, false, true)
	case Raw12BEPacked:
		return decodeRaw12Packed(cur, ox, oy, w, h, buf, true, false)
	case Raw12BEPackedCtrl10:
		return decodeRaw12Packed(cur, ox, oy, w, h, buf, true, true)
	case Raw12BEInterlaced:
		return decodeRaw12BEInterlaced(cur, ox, oy, w, h, buf)
	case Raw12BEUnpacked:
		return decodeRaw12BEUnpacked(cur, ox, oy, w, h, buf)
	case Raw12BEUnpackedLeftAligned:
		return decodeRaw12BEUnpackedLeftAligned(cur, ox, oy, w, h, buf)
	case Raw12LEUnpacked:
		return decodeRaw12LEUnpacked(cur, ox, oy, w, h, buf)
	case Raw14BEUnpacked:
		return decodeRaw14BEUnpacked(cur, ox, oy, w, h, buf)
	case Raw16LEUnpacked:
		return decodeRaw16LEUnpacked(cur, ox, oy, w, h, buf)
	case Raw16BEUnpacked:
		return decodeRaw16BEUnpacked(cur, ox, oy, w, h, buf)
	case Float32:
		return decodeFloat32(cur, ox, oy, w, h, buf)
	case Generic:
		return decodeGeneric(desc, cur, ox, oy, w, h, buf)
	default:
		return 0, fmt.Errorf("packing: unknown tag %d: %w", desc.Tag, errkind.ErrInvalidParameter)
	}
}

// truncationPreamble implements the shared preamble of spec §4.4: if
// the cursor doesn't hold a full h rows at bytesPerRow each, either
// shrink h to Remaining()/bytesPerRow-1 and record a non-fatal "Image
// truncated" warning when more than one row's worth of bytes remains,
// or fail fatally when no more than one row's worth is left.
func truncationPreamble(cur *cursor.Cursor, bytesPerRow, h int, buf *imgbuf.Buffer) (int, error) {
	if bytesPerRow <= 0 {
		return h, nil
	}
	need := bytesPerRow * h
	if cur.Remaining() >= need {
		return h, nil
	}
	if cur.Remaining() > bytesPerRow {
		newH := cur.Remaining()/bytesPerRow - 1
		buf.SetError(errkind.Truncated, "")
		return newH, nil
	}
	return 0, fmt.Errorf("packing: %w", errkind.ErrTruncated)
}

func requireMinWidth(w int) error {
	if w < 2 {
		return fmt.Errorf("packing: width %d < 2: %w", w, errkind.ErrInvalidParameter)
	}
	return nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// BytesPerRow reports the fixed number of input bytes one row of desc's
// packing consumes at the given width and components-per-pixel, or
// ok=false if the packing has no uniform per-row byte stride a caller
// could use to carve independent row bands — currently only
// Raw12BEInterlaced, whose two-field layout is not row-major.
func BytesPerRow(desc Descriptor, w, cpp int) (n int, ok bool) {
	switch desc.Tag {
	case Raw8:
		return w, true
	case Raw12LEPacked, Raw12BEPacked:
		return ceilDiv(w*12, 8), true
	case Raw12LEPackedCtrl10, Raw12BEPackedCtrl10:
		return ceilDiv(w*12, 8) + ceilDiv(w+2, 10), true
	case Raw12BEInterlaced:
		return 0, false
	case Raw12BEUnpacked, Raw12BEUnpackedLeftAligned, Raw12LEUnpacked, Raw14BEUnpacked, Raw16LEUnpacked, Raw16BEUnpacked:
		return 2 * w, true
	case Float32:
		return 4 * w * cpp, true
	case Generic:
		return desc.InputPitch, true
	default:
		return 0, false
	}
}
