package capture

import (
	"image"
	"image/color"
	"testing"

	"github.com/spf13/afero"
)

func testImage(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestStore_SaveAndList(t *testing.T) {
	s := NewMemStore()

	for seq := 0; seq < 3; seq++ {
		name, err := s.Save(seq, testImage(color.NRGBA{R: 0xff, A: 0xff}))
		if err != nil {
			t.Fatalf("Save(%d) failed: %v", seq, err)
		}
		if name == "" {
			t.Fatalf("Save(%d) returned an empty name", seq)
		}
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 captures, got %d", len(names))
	}
	want := []string{
		"captures/capture_0000.png",
		"captures/capture_0001.png",
		"captures/capture_0002.png",
	}
	for i, name := range names {
		if name != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], name)
		}
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
}

func TestStore_ListEmpty(t *testing.T) {
	s := NewMemStore()

	names, err := s.List()
	if err != nil {
		t.Fatalf("List on empty store failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected no captures, got %v", names)
	}
}

func TestStore_OpenRoundTrip(t *testing.T) {
	s := NewMemStore()
	c := color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}

	if _, err := s.Save(7, testImage(c)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	img, err := s.Open(7)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 4, 4) {
		t.Errorf("bounds: expected 4x4, got %v", got)
	}
	r, g, b, _ := img.At(2, 2).RGBA()
	if uint8(r>>8) != c.R || uint8(g>>8) != c.G || uint8(b>>8) != c.B {
		t.Errorf("pixel (2,2): expected %v, got r=%d g=%d b=%d", c, r>>8, g>>8, b>>8)
	}
}

func TestStore_OpenMissing(t *testing.T) {
	s := NewMemStore()

	if _, err := s.Open(99); err == nil {
		t.Error("expected an error opening a missing capture")
	}
}

func TestStore_SaveOverwritesSequence(t *testing.T) {
	s := NewMemStore()

	if _, err := s.Save(0, testImage(color.NRGBA{R: 0xff, A: 0xff})); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if _, err := s.Save(0, testImage(color.NRGBA{G: 0xff, A: 0xff})); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 capture after overwrite, got %d", count)
	}

	img, err := s.Open(0)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	_, g, _, _ := img.At(0, 0).RGBA()
	if uint8(g>>8) != 0xff {
		t.Errorf("expected the second image to win, got green=%d", g>>8)
	}
}

func TestStore_SaveReadOnlyFs(t *testing.T) {
	s := NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	if _, err := s.Save(0, testImage(color.NRGBA{A: 0xff})); err == nil {
		t.Error("expected an error saving to a read-only filesystem")
	}
}
