package bitpump

import (
	"errors"
	"testing"

	"github.com/dtorop/rawspeed/internal/cursor"
)

func TestGetBitsMSB8(t *testing.T) {
	p := New(cursor.FromBytes([]byte{0xB4, 0xCA}), JpegMSB8)

	hi, err := p.GetBits(4)
	if err != nil || hi != 0xB {
		t.Fatalf("GetBits(4) = %#x, %v, want 0xB, nil", hi, err)
	}
	lo, err := p.GetBits(4)
	if err != nil || lo != 0x4 {
		t.Fatalf("GetBits(4) = %#x, %v, want 0x4, nil", lo, err)
	}
	next, err := p.GetBits(8)
	if err != nil || next != 0xCA {
		t.Fatalf("GetBits(8) = %#x, %v, want 0xCA, nil", next, err)
	}
}

func TestGetBitsPlainLSB(t *testing.T) {
	p := New(cursor.FromBytes([]byte{0xB4}), PlainLSB)

	lo, err := p.GetBits(4)
	if err != nil || lo != 0x4 {
		t.Fatalf("GetBits(4) = %#x, %v, want 0x4, nil", lo, err)
	}
	hi, err := p.GetBits(4)
	if err != nil || hi != 0xB {
		t.Fatalf("GetBits(4) = %#x, %v, want 0xB, nil", hi, err)
	}
}

func TestGetBitsMSB16Word(t *testing.T) {
	// Big-endian 16-bit refill: 0x1234 -> top 12 bits = 0x123.
	p := New(cursor.FromBytes([]byte{0x12, 0x34}), JpegMSB16)
	v, err := p.GetBits(12)
	if err != nil || v != 0x123 {
		t.Fatalf("GetBits(12) = %#x, %v, want 0x123, nil", v, err)
	}
	v, err = p.GetBits(4)
	if err != nil || v != 0x4 {
		t.Fatalf("GetBits(4) = %#x, %v, want 0x4, nil", v, err)
	}
}

func TestGetBitsMSB32Word(t *testing.T) {
	p := New(cursor.FromBytes([]byte{0xAA, 0xBB, 0xCC, 0xDD}), JpegMSB32)
	v, err := p.GetBits(32)
	if err != nil || v != 0xAABBCCDD {
		t.Fatalf("GetBits(32) = %#x, %v, want 0xaabbccdd, nil", v, err)
	}
}

func TestSkipBits(t *testing.T) {
	p := New(cursor.FromBytes([]byte{0xFF, 0xAB}), JpegMSB8)
	if err := p.SkipBits(8); err != nil {
		t.Fatalf("SkipBits(8): %v", err)
	}
	v, err := p.GetBits(8)
	if err != nil || v != 0xAB {
		t.Fatalf("GetBits(8) after skip = %#x, %v, want 0xAB, nil", v, err)
	}
}

func TestSkipBitsWideRequest(t *testing.T) {
	// SkipBits must chunk requests larger than a pump's per-call word size.
	p := New(cursor.FromBytes([]byte{0, 0, 0, 0, 0xFF}), PlainLSB)
	if err := p.SkipBits(32); err != nil {
		t.Fatalf("SkipBits(32): %v", err)
	}
	v, err := p.GetBits(8)
	if err != nil || v != 0xFF {
		t.Fatalf("GetBits(8) = %#x, %v, want 0xFF, nil", v, err)
	}
}

func TestGetBitsTruncated(t *testing.T) {
	p := New(cursor.FromBytes([]byte{0x01}), JpegMSB16)
	if _, err := p.GetBits(16); !errors.Is(err, cursor.ErrTruncated) {
		t.Fatalf("GetBits(16) error = %v, want cursor.ErrTruncated", err)
	}
}

func TestGetBitsExceedsWordSize(t *testing.T) {
	p := New(cursor.FromBytes([]byte{0, 0, 0, 0}), JpegMSB16)
	if _, err := p.GetBits(17); !errors.Is(err, ErrInternal) {
		t.Fatalf("GetBits(17) error = %v, want ErrInternal", err)
	}
}

func TestCheckPositionIsNoOp(t *testing.T) {
	p := New(cursor.FromBytes(nil), PlainLSB)
	if err := p.CheckPosition(); err != nil {
		t.Fatalf("CheckPosition on exhausted cursor returned %v, want nil", err)
	}
}
