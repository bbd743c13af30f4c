package model

import (
	"fmt"
	"time"
)

// Symbol is a single status glyph from the face's fixed alphabet.
type Symbol string

const (
	SymbolWifi         Symbol = "W"
	SymbolUnread       Symbol = "!"
	SymbolNotification Symbol = "i"
	SymbolDND          Symbol = "<"
	SymbolAirplane     Symbol = ">"
	SymbolNoConnection Symbol = "X"
	SymbolGps          Symbol = "⌖"

	// SymbolAlarm marks the next alarm position on the dial.
	SymbolAlarm Symbol = "A"
	// SymbolHourMarker is the upright tick at the midnight position.
	SymbolHourMarker Symbol = "l"
)

// TimeOfDay is the wall-clock instant one frame is drawn for. It is
// captured fresh at the start of a draw and immutable for that frame.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// AlarmDisplayThreshold is how far ahead of its trigger time the next
// alarm appears on the dial.
const AlarmDisplayThreshold = 18 * time.Hour

// AlarmInfo is the next scheduled alarm, when one exists.
type AlarmInfo struct {
	TriggerTime time.Time
}

// DisplayedAt reports whether the alarm is close enough to show on the
// face: trigger − threshold ≤ now. An alarm exactly at the threshold is
// still shown. Safe on a nil receiver, which means no alarm is set.
func (a *AlarmInfo) DisplayedAt(now time.Time) bool {
	if a == nil {
		return false
	}
	return !a.TriggerTime.Add(-AlarmDisplayThreshold).After(now)
}

// Snapshot is one consistent read of the device signals that drive the
// face. It is assembled immediately before a frame and discarded after.
// Every field already carries its documented default when the
// underlying signal could not be read, so consumers never see an error.
type Snapshot struct {
	BatteryPercent    int
	WifiEnabled       bool
	AirplaneMode      bool
	HasNetwork        bool
	GpsEnabled        bool
	UnreadCount       int
	NotificationCount int

	// PriorityFilter is true when the interruption filter is in
	// priority mode; any other mode reads as "notifications suppressed"
	// and surfaces the DND symbol.
	PriorityFilter bool

	NextAlarm *AlarmInfo
}

// PermissionError is the one fault class allowed to reach the render
// path: a status read denied at the OS layer. The renderer converts it
// into the on-screen fault glyph for that frame only.
type PermissionError struct {
	Signal string
	Err    error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied reading %s: %v", e.Signal, e.Err)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// Label is the short fault-category text drawn at the face center.
func (e *PermissionError) Label() string { return "perm:" + e.Signal }
