package status

import (
	"github.com/thatsimonsguy/watchface/internal/model"
)

// Indicators derives the ordered status symbols for one frame. The
// order is fixed: wifi, unread/notification, DND, airplane/no
// connection, GPS. An unread count suppresses the plain notification
// symbol, and airplane mode suppresses the no-connection check. Pure
// over the snapshot; identical snapshots yield identical sequences.
func Indicators(s model.Snapshot) []model.Symbol {
	var symbols []model.Symbol

	if s.WifiEnabled {
		symbols = append(symbols, model.SymbolWifi)
	}

	if s.UnreadCount > 0 {
		symbols = append(symbols, model.SymbolUnread)
	} else if s.NotificationCount > 0 {
		symbols = append(symbols, model.SymbolNotification)
	}

	if !s.PriorityFilter {
		symbols = append(symbols, model.SymbolDND)
	}

	if s.AirplaneMode {
		symbols = append(symbols, model.SymbolAirplane)
	} else if !s.HasNetwork {
		symbols = append(symbols, model.SymbolNoConnection)
	}

	if s.GpsEnabled {
		symbols = append(symbols, model.SymbolGps)
	}

	return symbols
}

// HasActiveIndicators reports whether anything is flagged for this
// snapshot. It is a thin wrapper over Indicators so the two checks can
// never diverge.
func HasActiveIndicators(s model.Snapshot) bool {
	return len(Indicators(s)) > 0
}

// String flattens a symbol sequence for logging and frame history.
func String(symbols []model.Symbol) string {
	var out string
	for _, sym := range symbols {
		out += string(sym)
	}
	return out
}
