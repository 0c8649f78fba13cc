package transit

// Departure is a single entry on a station departure board.
// Scheduled & Realtime carry both the short (HH:MM) and full
// (DD.MM.YYYY, HH:MM) rendering of the upstream timestamps.
type Departure struct {
	Line      string `json:"line"`
	Direction string `json:"direction"`
	Platform  string `json:"platform,omitempty"`

	Scheduled     *string `json:"scheduled"`
	ScheduledFull *string `json:"scheduled_full"`
	Realtime      *string `json:"realtime"`
	RealtimeFull  *string `json:"realtime_full"`

	Delay        int      `json:"delay"`
	State        string   `json:"state"`
	RouteChanges []string `json:"route_changes"`
	LowFloor     bool     `json:"low_floor"`
}
