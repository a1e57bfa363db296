// Command rawdump is a minimal demonstration façade over the rawspeed
// decoding engine: it memory-maps a file, describes one or more slices
// on the command line, and prints the decoded buffer's dimensions and
// any non-fatal errors. It does not parse any container format — slice
// offsets and dimensions must be supplied explicitly.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"github.com/dtorop/rawspeed"
)

var packingNames = map[string]rawspeed.PackingTag{
	"raw8":                          rawspeed.Raw8,
	"raw12-le-packed":               rawspeed.Raw12LEPacked,
	"raw12-le-packed-ctrl10":        rawspeed.Raw12LEPackedCtrl10,
	"raw12-be-packed":               rawspeed.Raw12BEPacked,
	"raw12-be-packed-ctrl10":        rawspeed.Raw12BEPackedCtrl10,
	"raw12-be-interlaced":           rawspeed.Raw12BEInterlaced,
	"raw12-be-unpacked":             rawspeed.Raw12BEUnpacked,
	"raw12-be-unpacked-leftaligned": rawspeed.Raw12BEUnpackedLeftAligned,
	"raw12-le-unpacked":             rawspeed.Raw12LEUnpacked,
	"raw14-be-unpacked":             rawspeed.Raw14BEUnpacked,
	"raw16-le-unpacked":             rawspeed.Raw16LEUnpacked,
	"raw16-be-unpacked":             rawspeed.Raw16BEUnpacked,
	"float32":                       rawspeed.Float32,
	"generic":                       rawspeed.Generic,
}

var bitOrderNames = map[string]rawspeed.BitOrder{
	"plain-lsb": rawspeed.PlainLSB,
	"msb8":      rawspeed.JpegMSB8,
	"msb16":     rawspeed.JpegMSB16,
	"msb32":     rawspeed.JpegMSB32,
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var (
		width       = pflag.Int("width", 0, "sensor width in pixels")
		height      = pflag.Int("height", 0, "declared sensor height in pixels, used when --slice is not given")
		bits        = pflag.Int("bits", 12, "bits per sensor sample")
		cpp         = pflag.Int("cpp", 1, "components per pixel")
		packingName = pflag.String("packing", "raw12-le-packed", "packing tag, one of: "+strings.Join(packingKeys(), ", "))
		orderName   = pflag.String("order", "msb8", "bit order for the generic packing")
		inputPitch  = pflag.Int("input-pitch", 0, "bytes per row for the generic packing")
		sampleName  = pflag.String("sample", "u16", "sample type: u16 or f32")
		slices      = pflag.StringArray("slice", nil, "offset:bytes:rows, may be repeated; defaults to one slice spanning the whole file")
		workers     = pflag.Int("workers", 1, "row-band decode workers per slice")
		uncorrected = pflag.Bool("uncorrected", false, "bypass the 8-bit lookup curve")
	)
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rawdump [flags] <file>")
		pflag.PrintDefaults()
		os.Exit(2)
	}
	path := pflag.Arg(0)

	tag, ok := packingNames[*packingName]
	if !ok {
		log.Error("unknown packing", "packing", *packingName)
		os.Exit(1)
	}
	desc := rawspeed.PackingDescriptor{Tag: tag}
	if tag == rawspeed.Generic {
		order, ok := bitOrderNames[*orderName]
		if !ok {
			log.Error("unknown bit order", "order", *orderName)
			os.Exit(1)
		}
		desc.BitOrder = order
		desc.BitsPerPixel = *bits
		desc.InputPitch = *inputPitch
	}

	sampleType := rawspeed.U16
	if *sampleName == "f32" {
		sampleType = rawspeed.F32
	}

	f, err := os.Open(path)
	if err != nil {
		log.Error("open file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		log.Error("stat file", "error", err)
		os.Exit(1)
	}
	size := int(info.Size())
	if size == 0 {
		log.Error("empty file")
		os.Exit(1)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		log.Error("mmap file", "error", err)
		os.Exit(1)
	}
	defer unix.Munmap(data)

	sliceDescs, err := parseSlices(*slices, size, *height)
	if err != nil {
		log.Error("parse slices", "error", err)
		os.Exit(1)
	}

	img, err := rawspeed.Decode(data, sliceDescs, *width, *bits, desc, sampleType, *cpp, rawspeed.DecodeOptions{
		UncorrectedRawValues: *uncorrected,
		Workers:              *workers,
	})
	if err != nil {
		log.Error("decode failed", "kind", rawspeed.ClassifyError(err), "error", err)
		os.Exit(1)
	}

	log.Info("decoded", "width", img.Width(), "height", img.Height(), "errors", img.ErrorCount())
	for _, e := range img.Errors() {
		log.Warn("decode warning", "kind", e.Kind, "message", e.Message)
	}
}

func packingKeys() []string {
	keys := make([]string, 0, len(packingNames))
	for k := range packingNames {
		keys = append(keys, k)
	}
	return keys
}

// parseSlices turns repeated --slice offset:bytes:rows flags into
// SliceDescriptors, defaulting to a single slice spanning the whole
// file when none were given.
func parseSlices(raw []string, fileSize, height int) ([]rawspeed.SliceDescriptor, error) {
	if len(raw) == 0 {
		return []rawspeed.SliceDescriptor{{OffsetInFile: 0, ByteCount: fileSize, RowCount: height}}, nil
	}
	out := make([]rawspeed.SliceDescriptor, 0, len(raw))
	for _, s := range raw {
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("slice %q: want offset:bytes:rows", s)
		}
		offset, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("slice %q: bad offset: %w", s, err)
		}
		byteCount, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("slice %q: bad byte count: %w", s, err)
		}
		rowCount, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("slice %q: bad row count: %w", s, err)
		}
		out = append(out, rawspeed.SliceDescriptor{OffsetInFile: offset, ByteCount: byteCount, RowCount: rowCount})
	}
	return out, nil
}
