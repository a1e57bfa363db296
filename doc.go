// Package rawspeed decodes uncompressed camera RAW sensor images into a
// canonical 16-bit (or 32-bit float) pixel buffer.
//
// It covers the uncompressed decoding engine only: given a validated
// file byte range and a packing descriptor, it materialises sensor
// samples into a target image buffer with bounds-checked, endian-aware
// unpacking, multi-slice stitching, per-slice failure isolation, and
// parallel row decoding. Container parsing, camera-database lookup,
// lossless-compressed vendor codecs, demosaicing and colour management
// are the job of a surrounding application.
//
// Basic usage:
//
//	img, err := rawspeed.Decode(fileBytes, slices, width, bitsPerPixel,
//		rawspeed.PackingDescriptor{Tag: rawspeed.Raw12LEPacked},
//		rawspeed.U16, 1, rawspeed.DecodeOptions{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(img.Width(), img.Height(), img.ErrorCount())
package rawspeed
