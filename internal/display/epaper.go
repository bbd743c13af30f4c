package display

import (
	"fmt"
	"image"
	"image/color"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/waveshare2in13v4"
	"periph.io/x/host/v3"
)

// EPaper drives a Waveshare 2.13" v4 panel over SPI. Every flush is a
// full refresh; partial refresh ghosts badly on a face that redraws
// once per minute all day.
type EPaper struct {
	port spi.PortCloser
	dev  *waveshare2in13v4.Dev
}

func OpenEPaper() (*EPaper, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}

	port, err := spireg.Open("")
	if err != nil {
		return nil, fmt.Errorf("open spi port: %w", err)
	}

	opts := waveshare2in13v4.EPD2in13v4
	dev, err := waveshare2in13v4.NewHat(port, &opts)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("open epaper hat: %w", err)
	}

	if err := dev.Init(); err != nil {
		port.Close()
		return nil, fmt.Errorf("init epaper: %w", err)
	}
	if err := dev.Clear(color.White); err != nil {
		port.Close()
		return nil, fmt.Errorf("clear epaper: %w", err)
	}

	log.Info().
		Int("width", dev.Bounds().Dx()).
		Int("height", dev.Bounds().Dy()).
		Msg("E-paper display initialized")

	return &EPaper{port: port, dev: dev}, nil
}

func (e *EPaper) Bounds() image.Rectangle {
	return e.dev.Bounds()
}

func (e *EPaper) Flush(img image.Image) error {
	if err := e.dev.Draw(e.dev.Bounds(), img, image.Point{}); err != nil {
		return fmt.Errorf("epaper draw: %w", err)
	}
	return nil
}

func (e *EPaper) Close() error {
	if err := e.dev.Halt(); err != nil {
		log.Warn().Err(err).Msg("Failed to halt e-paper display")
	}
	return e.port.Close()
}
