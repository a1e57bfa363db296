package rawspeed

import (
	"github.com/dtorop/rawspeed/internal/bitpump"
	"github.com/dtorop/rawspeed/internal/cursor"
	"github.com/dtorop/rawspeed/internal/imgbuf"
	"github.com/dtorop/rawspeed/internal/packing"
	"github.com/dtorop/rawspeed/internal/sliceasm"
)

// SampleType selects the decoded pixel storage format.
type SampleType = imgbuf.SampleType

const (
	U16 = imgbuf.U16
	F32 = imgbuf.F32
)

// BitOrder selects the BitPump variant backing the Generic packing.
type BitOrder = bitpump.Order

const (
	PlainLSB  = bitpump.PlainLSB
	JpegMSB8  = bitpump.JpegMSB8
	JpegMSB16 = bitpump.JpegMSB16
	JpegMSB32 = bitpump.JpegMSB32
)

// PackingTag names one packing from the catalogue in PackingDescriptor.
type PackingTag = packing.Tag

const (
	Raw8                       = packing.Raw8
	Raw12LEPacked              = packing.Raw12LEPacked
	Raw12LEPackedCtrl10        = packing.Raw12LEPackedCtrl10
	Raw12BEPacked              = packing.Raw12BEPacked
	Raw12BEPackedCtrl10        = packing.Raw12BEPackedCtrl10
	Raw12BEInterlaced          = packing.Raw12BEInterlaced
	Raw12BEUnpacked            = packing.Raw12BEUnpacked
	Raw12BEUnpackedLeftAligned = packing.Raw12BEUnpackedLeftAligned
	Raw12LEUnpacked            = packing.Raw12LEUnpacked
	Raw14BEUnpacked            = packing.Raw14BEUnpacked
	Raw16LEUnpacked            = packing.Raw16LEUnpacked
	Raw16BEUnpacked            = packing.Raw16BEUnpacked
	Float32                    = packing.Float32
	Generic                    = packing.Generic
)

// PackingDescriptor selects a packing and, for Generic, the bit depth,
// bit order and input pitch it needs.
type PackingDescriptor = packing.Descriptor

// SliceDescriptor names one contiguous strip of sensor rows within the
// source file.
type SliceDescriptor = sliceasm.SliceDescriptor

// DecodeOptions carries the switches a caller may set; everything else
// about a decode is derived from the slice list and packing descriptor.
type DecodeOptions struct {
	// UncorrectedRawValues, when true, bypasses the 8-bit lookup curve
	// and writes raw byte values directly.
	UncorrectedRawValues bool
	// LookupTable is the optional 256-entry camera curve consulted by
	// the Raw8 packing when UncorrectedRawValues is false.
	LookupTable []uint16
	// Workers, when > 1, decodes eligible slices' rows across that many
	// goroutines instead of one at a time.
	Workers int
}

// Image is a decoded RAW frame: pixel storage plus the metadata a
// packing decoder populated alongside it.
type Image struct {
	buf *imgbuf.Buffer
}

// Width and Height return the image's active pixel dimensions.
func (img *Image) Width() int  { return img.buf.Width() }
func (img *Image) Height() int { return img.buf.Height() }

// ComponentsPerPixel returns the pixel's component count (1 for CFA
// mosaic data, 3 for linear RGB).
func (img *Image) ComponentsPerPixel() int { return img.buf.ComponentsPerPixel() }

// SampleType reports whether samples are stored as U16 or F32.
func (img *Image) SampleType() SampleType { return img.buf.SampleType() }

// RowU16 returns row y's samples for a U16 image.
func (img *Image) RowU16(y int) []uint16 { return img.buf.RowU16(y) }

// RowF32 returns row y's samples for an F32 image.
func (img *Image) RowF32(y int) []float32 { return img.buf.RowF32(y) }

// CFA returns the image's colour filter array descriptor.
func (img *Image) CFA() *imgbuf.CFA { return &img.buf.CFA }

// WhitePoint and BlackLevel return the decoder-assigned sample range.
func (img *Image) WhitePoint() int { return img.buf.WhitePoint }
func (img *Image) BlackLevel() int { return img.buf.BlackLevel }

// Errors returns the non-fatal decode errors accumulated across every
// slice and worker.
func (img *Image) Errors() []imgbuf.Entry { return img.buf.Errors() }

// ErrorCount returns the number of accumulated non-fatal errors.
func (img *Image) ErrorCount() int { return img.buf.ErrorCount() }

// Decode assembles slices of file into one Image, decoding each with
// the packing named by desc. width and bitsPerPixel describe the
// target sensor dimensions and bit depth; sampleType and cpp describe
// the output buffer's storage. See internal/sliceasm and
// internal/packing for the stitching and per-pixel decode rules.
func Decode(file []byte, slices []SliceDescriptor, width, bitsPerPixel int, desc PackingDescriptor, sampleType SampleType, cpp int, opts DecodeOptions) (*Image, error) {
	cfg := sliceasm.Config{
		Width:              width,
		BitsPerPixel:       bitsPerPixel,
		Packing:            desc,
		SampleType:         sampleType,
		ComponentsPerPixel: cpp,
		Uncorrected:        opts.UncorrectedRawValues,
		LookupTable:        opts.LookupTable,
		Workers:            opts.Workers,
	}
	buf, err := sliceasm.Assemble(cursor.NewRange(file), slices, cfg)
	if err != nil {
		return nil, err
	}
	return &Image{buf: buf}, nil
}
