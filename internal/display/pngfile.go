package display

import (
	"image"
	"image/png"
	"os"
)

// PNGFile is the development sink: each flush overwrites a PNG on
// disk. Write goes through a temp file and rename so a watcher never
// sees a half-written frame.
type PNGFile struct {
	path   string
	bounds image.Rectangle
}

func NewPNGFile(path string, width, height int) *PNGFile {
	return &PNGFile{
		path:   path,
		bounds: image.Rect(0, 0, width, height),
	}
}

func (p *PNGFile) Bounds() image.Rectangle {
	return p.bounds
}

func (p *PNGFile) Flush(img image.Image) error {
	tmp := p.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, p.path)
}

func (p *PNGFile) Close() error {
	return nil
}
