// Package export writes the finished launcher icon as an Android
// resource archive: one PNG per screen density under the usual
// res/mipmap-<density>/ layout, plus the high resolution store asset.
package export

import (
	"archive/zip"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// Density pairs an Android density qualifier with its launcher icon
// size in pixels.
type Density struct {
	Name string
	Size int
}

// LauncherDensities is the standard launcher icon ladder.
var LauncherDensities = []Density{
	{"mdpi", 48},
	{"hdpi", 72},
	{"xhdpi", 96},
	{"xxhdpi", 144},
	{"xxxhdpi", 192},
}

// WebSize is the side of the high resolution store asset.
const WebSize = 512

// FileName is the resource name used for every density entry.
const FileName = "ic_launcher"

// WriteZip renders the density ladder from the master image and
// writes the archive to w. The master should be at least WebSize
// pixels; every entry is downscaled with Lanczos resampling.
func WriteZip(w io.Writer, master image.Image, densities []Density) error {
	if len(densities) == 0 {
		densities = LauncherDensities
	}
	zw := zip.NewWriter(w)
	for _, d := range densities {
		img := imaging.Resize(master, d.Size, d.Size, imaging.Lanczos)
		name := fmt.Sprintf("res/mipmap-%s/%s.png", d.Name, FileName)
		if err := writePNG(zw, name, img); err != nil {
			return err
		}
	}
	web := imaging.Resize(master, WebSize, WebSize, imaging.Lanczos)
	if err := writePNG(zw, fmt.Sprintf("web_hi_res_%d.png", WebSize), web); err != nil {
		return err
	}
	return zw.Close()
}

func writePNG(zw *zip.Writer, name string, img image.Image) error {
	f, err := zw.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return nil
}
