package sysinfo

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/watchface/internal/datadog"
	"github.com/thatsimonsguy/watchface/internal/geom"
	"github.com/thatsimonsguy/watchface/internal/model"
)

// readFile is a seam for tests.
var readFile = os.ReadFile

// Paths locates the files each device signal is read from. Battery and
// network signals come from sysfs; the rest are small state files
// maintained by whatever owns that subsystem on the device.
type Paths struct {
	BatteryCapacity   string `json:"battery_capacity"`
	WifiState         string `json:"wifi_state"`
	AirplaneMode      string `json:"airplane_mode"`
	NetworkCarrier    string `json:"network_carrier"`
	GpsState          string `json:"gps_state"`
	UnreadCount       string `json:"unread_count"`
	NotificationCount string `json:"notification_count"`
	InterruptionMode  string `json:"interruption_mode"`
	NextAlarm         string `json:"next_alarm"`
}

// Provider assembles one Snapshot per frame from the configured signal
// files. It is the long-lived handle the host owns; the render core
// itself stays stateless. Every signal read is individually
// fault-isolated: an unreadable or absent file degrades to that
// signal's documented default and can never suppress another signal in
// the same frame.
type Provider struct {
	paths Paths
}

func New(paths Paths) *Provider {
	return &Provider{paths: paths}
}

// Snapshot reads all device signals for one frame. It never panics and
// the only error it can return is a *model.PermissionError, raised when
// a signal file exists but the OS denies the read; the first denied
// signal wins and the renderer shows it for that frame only.
func (p *Provider) Snapshot(now time.Time) (model.Snapshot, error) {
	snap := model.Snapshot{BatteryPercent: geom.DefaultBatteryPercent}
	var perm *model.PermissionError

	if v, err := p.readCount(p.paths.BatteryCapacity); err == nil {
		snap.BatteryPercent = v
	} else {
		noteFault("battery", err, &perm)
	}

	snap.WifiEnabled = p.readFlag("wifi", p.paths.WifiState, &perm)
	snap.AirplaneMode = p.readFlag("airplane", p.paths.AirplaneMode, &perm)
	snap.HasNetwork = p.readFlag("network", p.paths.NetworkCarrier, &perm)
	snap.GpsEnabled = p.readFlag("gps", p.paths.GpsState, &perm)

	if v, err := p.readCount(p.paths.UnreadCount); err == nil {
		snap.UnreadCount = v
	} else {
		noteFault("unread", err, &perm)
	}
	if v, err := p.readCount(p.paths.NotificationCount); err == nil {
		snap.NotificationCount = v
	} else {
		noteFault("notifications", err, &perm)
	}

	if mode, err := p.readString(p.paths.InterruptionMode); err == nil {
		snap.PriorityFilter = mode == "priority"
	} else {
		noteFault("interruption_filter", err, &perm)
	}

	if alarm, err := p.readAlarm(); err == nil {
		snap.NextAlarm = alarm
	} else {
		noteFault("alarm", err, &perm)
	}

	if perm != nil {
		return snap, perm
	}
	return snap, nil
}

// readFlag treats the file content "1" or "true" as an enabled signal.
// Any failure reads as disabled.
func (p *Provider) readFlag(signal, path string, perm **model.PermissionError) bool {
	s, err := p.readString(path)
	if err != nil {
		noteFault(signal, err, perm)
		return false
	}
	return s == "1" || s == "true"
}

func (p *Provider) readCount(path string) (int, error) {
	s, err := p.readString(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func (p *Provider) readString(path string) (string, error) {
	if path == "" {
		return "", fs.ErrNotExist
	}
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// readAlarm parses the next alarm trigger as epoch milliseconds. A
// missing file means no alarm is scheduled.
func (p *Provider) readAlarm() (*model.AlarmInfo, error) {
	s, err := p.readString(p.paths.NextAlarm)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	millis, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &model.AlarmInfo{TriggerTime: time.UnixMilli(millis)}, nil
}

// noteFault records a failed signal read. A missing file is a feature
// that is simply absent on this device and stays quiet; a permission
// denial is promoted to the frame's fault (first one wins); anything
// else is counted and logged at debug so a flaky file cannot flood the
// log once per minute.
func noteFault(signal string, err error, perm **model.PermissionError) {
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if errors.Is(err, fs.ErrPermission) {
		datadog.Count("sysinfo.permission_denied", 1, "signal:"+signal)
		if *perm == nil {
			*perm = &model.PermissionError{Signal: signal, Err: err}
		}
		return
	}
	datadog.Count("sysinfo.fault", 1, "signal:"+signal)
	log.Debug().Err(err).Str("signal", signal).Msg("Signal read failed, using default")
}
