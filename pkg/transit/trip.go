package transit

type Trip struct {
	Duration int `json:"duration"`
	Changes  int `json:"changes"`

	Departure TripPoint `json:"departure"`
	Arrival   TripPoint `json:"arrival"`

	Legs []Leg `json:"legs"`
}

// TripPoint summarises one end of a trip. All fields stay null when
// the route has no usable stop to take them from.
type TripPoint struct {
	Time     *string `json:"time"`
	TimeFull *string `json:"time_full"`
	Station  *string `json:"station"`
}

type Leg struct {
	Line      string `json:"line"`
	Direction string `json:"direction"`

	Departure     *string `json:"departure"`
	DepartureFull *string `json:"departure_full"`
	Arrival       *string `json:"arrival"`
	ArrivalFull   *string `json:"arrival_full"`

	Duration int `json:"duration"`
}
