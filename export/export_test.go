package export

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func newZipReader(t *testing.T, buf *bytes.Buffer) (*zip.Reader, error) {
	t.Helper()
	return zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
}

func masterImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 512, 512))
	for i := range img.Pix {
		img.Pix[i] = 0xFF // solid white
	}
	return img
}

func TestWriteZip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteZip(&buf, masterImage(), nil); err != nil {
		t.Fatal(err)
	}
	zr, err := newZipReader(t, &buf)
	if err != nil {
		t.Fatal(err)
	}
	wantSizes := map[string]int{
		"res/mipmap-mdpi/ic_launcher.png":    48,
		"res/mipmap-hdpi/ic_launcher.png":    72,
		"res/mipmap-xhdpi/ic_launcher.png":   96,
		"res/mipmap-xxhdpi/ic_launcher.png":  144,
		"res/mipmap-xxxhdpi/ic_launcher.png": 192,
		"web_hi_res_512.png":                 512,
	}
	if len(zr.File) != len(wantSizes) {
		t.Fatalf("archive has %d entries, want %d", len(zr.File), len(wantSizes))
	}
	for _, f := range zr.File {
		want, ok := wantSizes[f.Name]
		if !ok {
			t.Errorf("unexpected entry %q", f.Name)
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		cfg, err := png.DecodeConfig(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("decoding %s: %v", f.Name, err)
		}
		if cfg.Width != want || cfg.Height != want {
			t.Errorf("%s is %dx%d, want %dx%d", f.Name, cfg.Width, cfg.Height, want, want)
		}
	}
}

func TestWriteZipCustomLadder(t *testing.T) {
	var buf bytes.Buffer
	err := WriteZip(&buf, masterImage(), []Density{{"mdpi", 48}})
	if err != nil {
		t.Fatal(err)
	}
	zr, err := newZipReader(t, &buf)
	if err != nil {
		t.Fatal(err)
	}
	// one density entry plus the store asset
	if len(zr.File) != 2 {
		t.Errorf("archive has %d entries, want 2", len(zr.File))
	}
}

func TestWriteZipPreservesColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 512, 512))
	for y := 0; y < 512; y++ {
		for x := 0; x < 512; x++ {
			img.SetRGBA(x, y, color.RGBA{0x51, 0x2D, 0xA8, 0xFF})
		}
	}
	var buf bytes.Buffer
	if err := WriteZip(&buf, img, []Density{{"mdpi", 48}}); err != nil {
		t.Fatal(err)
	}
	zr, err := newZipReader(t, &buf)
	if err != nil {
		t.Fatal(err)
	}
	rc, err := zr.File[0].Open()
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	decoded, err := png.Decode(rc)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := decoded.At(24, 24).RGBA()
	if r>>8 != 0x51 || g>>8 != 0x2D || b>>8 != 0xA8 {
		t.Errorf("resampled center = %v,%v,%v", r>>8, g>>8, b>>8)
	}
}
