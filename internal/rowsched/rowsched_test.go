package rowsched

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dtorop/rawspeed/internal/errkind"
	"github.com/dtorop/rawspeed/internal/imgbuf"
)

func TestBandsPartition(t *testing.T) {
	cases := []struct {
		h, workers int
		want       []Band
	}{
		{10, 4, []Band{{0, 3}, {3, 3}, {6, 3}, {9, 1}}},
		{3, 8, []Band{{0, 1}, {1, 1}, {2, 1}}}, // workers clamped to h
		{1, 4, []Band{{0, 1}}},
	}
	for _, c := range cases {
		got := Bands(c.h, c.workers)
		if len(got) != len(c.want) {
			t.Fatalf("Bands(%d,%d) = %v, want %v", c.h, c.workers, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("Bands(%d,%d)[%d] = %v, want %v", c.h, c.workers, i, got[i], c.want[i])
			}
		}
	}
}

func TestBandsCoverWithoutOverlap(t *testing.T) {
	bands := Bands(97, 6)
	covered := make([]bool, 97)
	for _, b := range bands {
		for y := b.Start; y < b.Start+b.Height; y++ {
			if covered[y] {
				t.Fatalf("row %d covered by more than one band", y)
			}
			covered[y] = true
		}
	}
	for y, ok := range covered {
		if !ok {
			t.Fatalf("row %d not covered by any band", y)
		}
	}
}

func TestRunAllSucceed(t *testing.T) {
	buf, _ := imgbuf.New(4, 8, 1, imgbuf.U16, 255)
	var mu sync.Mutex
	seen := make(map[int]bool)
	err := Run(8, 4, buf, func(b Band) error {
		mu.Lock()
		seen[b.Start] = true
		mu.Unlock()
		row := buf.RowU16(b.Start)
		row[0] = uint16(b.Start)
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if buf.ErrorCount() != 0 {
		t.Fatalf("ErrorCount() = %d, want 0", buf.ErrorCount())
	}
	if len(seen) != 4 {
		t.Fatalf("bands invoked = %d, want 4", len(seen))
	}
}

func TestRunPartialFailureAppendsErrors(t *testing.T) {
	buf, _ := imgbuf.New(4, 4, 1, imgbuf.U16, 255)
	err := Run(4, 4, buf, func(b Band) error {
		if b.Start == 2 {
			return fmt.Errorf("band failed: %w", errkind.ErrTruncated)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v, want nil (partial failure is not fatal)", err)
	}
	if buf.ErrorCount() != 1 {
		t.Fatalf("ErrorCount() = %d, want 1", buf.ErrorCount())
	}
}

func TestRunAllFail(t *testing.T) {
	buf, _ := imgbuf.New(4, 4, 1, imgbuf.U16, 255)
	err := Run(4, 4, buf, func(b Band) error {
		return fmt.Errorf("band %d failed: %w", b.Start, errkind.ErrIOError)
	})
	if err == nil {
		t.Fatal("Run should fail when every band fails")
	}
	if !errors.Is(err, errkind.ErrIOError) {
		t.Fatalf("err = %v, want wrapping ErrIOError", err)
	}
	if buf.ErrorCount() != 0 {
		t.Fatalf("ErrorCount() = %d, want 0 (fatal path doesn't also append)", buf.ErrorCount())
	}
}
