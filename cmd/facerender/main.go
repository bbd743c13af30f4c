package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/thatsimonsguy/watchface/internal/display"
	"github.com/thatsimonsguy/watchface/internal/model"
	"github.com/thatsimonsguy/watchface/internal/render"
)

// facerender draws a single frame from explicit inputs to a PNG so the
// face can be eyeballed without hardware or live system signals.
func main() {
	var width, height, hour, minute, battery, unread, notifications int
	var wifi, airplane, network, gps, priority bool
	var alarmIn time.Duration
	var out string

	flag.IntVar(&width, "width", 250, "Canvas width in pixels")
	flag.IntVar(&height, "height", 250, "Canvas height in pixels")
	flag.IntVar(&hour, "hour", -1, "Hour of day (defaults to now)")
	flag.IntVar(&minute, "minute", -1, "Minute of hour (defaults to now)")
	flag.IntVar(&battery, "battery", 100, "Battery percent")
	flag.IntVar(&unread, "unread", 0, "Unread notification count")
	flag.IntVar(&notifications, "notifications", 0, "Notification count")
	flag.BoolVar(&wifi, "wifi", false, "WiFi enabled")
	flag.BoolVar(&airplane, "airplane", false, "Airplane mode")
	flag.BoolVar(&network, "network", true, "Network connected")
	flag.BoolVar(&gps, "gps", false, "GPS enabled")
	flag.BoolVar(&priority, "priority", true, "Interruption filter in priority mode")
	flag.DurationVar(&alarmIn, "alarm-in", 0, "Next alarm offset from now (0 for none)")
	flag.StringVar(&out, "out", "frame.png", "Output PNG path")
	flag.Parse()

	now := time.Now()
	if hour >= 0 || minute >= 0 {
		if hour < 0 {
			hour = now.Hour()
		}
		if minute < 0 {
			minute = now.Minute()
		}
		now = time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	}

	snap := model.Snapshot{
		BatteryPercent:    battery,
		WifiEnabled:       wifi,
		AirplaneMode:      airplane,
		HasNetwork:        network,
		GpsEnabled:        gps,
		UnreadCount:       unread,
		NotificationCount: notifications,
		PriorityFilter:    priority,
	}
	if alarmIn > 0 {
		snap.NextAlarm = &model.AlarmInfo{TriggerTime: now.Add(alarmIn)}
	}

	renderer := render.New(render.DefaultStyle())
	renderer.SetDimensions(width, height)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := renderer.RenderFrame(img, now, snap, nil); err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	sink := display.NewPNGFile(out, width, height)
	if err := sink.Flush(img); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%dx%d at %02d:%02d)\n", out, width, height, now.Hour(), now.Minute())
}
