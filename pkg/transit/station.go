package transit

type Station struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
	Type string `json:"type"`

	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lng,omitempty"`
}

type Stop struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`

	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lng,omitempty"`
}
