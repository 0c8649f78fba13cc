package vvo

// Raw response shapes of the upstream web API. Field names follow the
// provider's JSON exactly; anything the provider may omit is a pointer
// or slice so absence survives decoding.

type PointFinderResponse struct {
	Status *APIStatus `json:"Status"`
	Points []Point    `json:"Points"`
}

type Point struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
	City string `json:"City"`
	Type string `json:"Type"`

	// (longitude, latitude) scaled by 1e6
	Coords []float64 `json:"Coords"`
}

type DepartureMonitorResponse struct {
	Status     *APIStatus  `json:"Status"`
	Name       string      `json:"Name"`
	Place      string      `json:"Place"`
	Departures []Departure `json:"Departures"`
}

type Departure struct {
	LineName      string    `json:"LineName"`
	Direction     string    `json:"Direction"`
	Platform      *Platform `json:"Platform"`
	ScheduledTime string    `json:"ScheduledTime"`
	RealTime      string    `json:"RealTime"`
	Delay         *int      `json:"Delay"`
	State         string    `json:"State"`
	RouteChanges  []string  `json:"RouteChanges"`
	Vehicle       *Vehicle  `json:"Vehicle"`
}

type Platform struct {
	Name string `json:"Name"`
	Type string `json:"Type"`
}

type Vehicle struct {
	Class string `json:"Class"`
	Type  string `json:"Type"`
}

type TripsResponse struct {
	Status *APIStatus `json:"Status"`
	Routes []Route    `json:"Routes"`
}

type Route struct {
	Duration      int            `json:"Duration"`
	Interchanges  int            `json:"Interchanges"`
	PartialRoutes []PartialRoute `json:"PartialRoutes"`
}

type PartialRoute struct {
	Mot          *Mot       `json:"Mot"`
	Duration     int        `json:"Duration"`
	RegularStops []TripStop `json:"RegularStops"`
}

type Mot struct {
	Name      string `json:"Name"`
	Direction string `json:"Direction"`
	Type      string `json:"Type"`
}

type TripStop struct {
	Name          string    `json:"Name"`
	Place         string    `json:"Place"`
	ArrivalTime   string    `json:"ArrivalTime"`
	DepartureTime string    `json:"DepartureTime"`
	Platform      *Platform `json:"Platform"`
	Coords        []float64 `json:"Coords"`
}

type LinesResponse struct {
	Status *APIStatus `json:"Status"`
	Lines  []Line     `json:"Lines"`
}

type Line struct {
	ID         string   `json:"Id"`
	Name       string   `json:"Name"`
	Mot        string   `json:"Mot"`
	Directions []string `json:"Directions"`
}

type StopsResponse struct {
	Status *APIStatus `json:"Status"`
	Stops  []Stop     `json:"Stops"`
}

type Stop struct {
	ID     string    `json:"Id"`
	Name   string    `json:"Name"`
	Place  string    `json:"Place"`
	Coords []float64 `json:"Coords"`
}

type APIStatus struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}
