package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/watchface/db"
	"github.com/thatsimonsguy/watchface/internal/config"
	"github.com/thatsimonsguy/watchface/internal/datadog"
	"github.com/thatsimonsguy/watchface/internal/display"
	"github.com/thatsimonsguy/watchface/internal/logging"
	"github.com/thatsimonsguy/watchface/internal/render"
	"github.com/thatsimonsguy/watchface/internal/sysinfo"
	"github.com/thatsimonsguy/watchface/system/faceloop"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogFile)

	log.Info().
		Str("output", cfg.Output).
		Int("tick_seconds", cfg.TickIntervalSeconds).
		Msg("Starting watch face daemon")

	if cfg.EnableDatadog {
		datadog.InitMetrics(cfg.DDAgentAddr, cfg.DDNamespace, cfg.DDTags, true)
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open frame history database")
	}
	defer conn.Close()
	if err := db.Seed(conn); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed frame history schema")
	}

	var sink display.Sink
	switch cfg.Output {
	case config.OutputPNG:
		sink = display.NewPNGFile(cfg.FramePath, cfg.DisplayWidth, cfg.DisplayHeight)
	default:
		sink, err = display.OpenEPaper()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open e-paper display")
		}
	}
	defer sink.Close()

	provider := sysinfo.New(cfg.Signals)
	renderer := render.New(render.DefaultStyle())

	loop := faceloop.New(sink, renderer, provider, conn,
		time.Duration(cfg.TickIntervalSeconds)*time.Second,
		time.Duration(cfg.RetainFrameDays)*24*time.Hour)
	loop.Run()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info().Str("signal", sig.String()).Msg("Shutting down")
}
