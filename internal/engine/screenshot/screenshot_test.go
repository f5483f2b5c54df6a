package screenshot

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

func fixedCapture(dir string, format Format) *Capture {
	c := New(dir, "shot", format)
	c.now = func() time.Time {
		return time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
	}
	return c
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"BMP", FormatBMP, false},
		{"jpeg", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q) err = %v, want ErrUnknownFormat", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestFilename(t *testing.T) {
	c := fixedCapture("out", FormatPNG)
	want := filepath.Join("out", "shot_2024-03-09_14-05-06.png")
	if got := c.Filename(); got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

// 2x2 pixels, bottom row first: bottom red/green, top blue/white.
var glPixels = []byte{
	255, 0, 0, 255, 0, 255, 0, 255,
	0, 0, 255, 255, 255, 255, 255, 255,
}

func TestFromPixelsFlips(t *testing.T) {
	dir := t.TempDir()
	c := fixedCapture(dir, FormatPNG)

	path, err := c.FromPixels(glPixels, 2, 2)
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening screenshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}

	blue := color.RGBA{0, 0, 255, 255}
	red := color.RGBA{255, 0, 0, 255}
	if got := color.RGBAModel.Convert(img.At(0, 0)); got != blue {
		t.Errorf("top-left = %v, want blue", got)
	}
	if got := color.RGBAModel.Convert(img.At(0, 1)); got != red {
		t.Errorf("bottom-left = %v, want red", got)
	}
}

func TestFromPixelsBMP(t *testing.T) {
	c := fixedCapture(t.TempDir(), FormatBMP)

	path, err := c.FromPixels(glPixels, 2, 2)
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening screenshot: %v", err)
	}
	defer f.Close()
	cfg, err := bmp.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}
	if cfg.Width != 2 || cfg.Height != 2 {
		t.Errorf("size = %dx%d, want 2x2", cfg.Width, cfg.Height)
	}
}

func TestFromPixelsSizeMismatch(t *testing.T) {
	c := fixedCapture(t.TempDir(), FormatPNG)
	if _, err := c.FromPixels(glPixels, 3, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestFromImageUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	c := fixedCapture(dir, Format("gif"))
	_, err := c.FromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("failed capture left %d file(s) behind", len(entries))
	}
}

func TestFromImageEncodeFailureRemovesFile(t *testing.T) {
	dir := t.TempDir()
	c := fixedCapture(dir, FormatPNG)

	// png rejects images with a non-positive dimension after the file exists.
	_, err := c.FromImage(image.NewRGBA(image.Rect(0, 0, 0, 5)))
	if err == nil {
		t.Fatal("expected encode error for empty image")
	}
	if _, statErr := os.Stat(c.Filename()); !os.IsNotExist(statErr) {
		t.Errorf("expected %s to be removed, stat err = %v", c.Filename(), statErr)
	}
}
