package transform

// Human-readable names for the upstream mode-of-transport codes.
var motNames = map[string]string{
	"Tram":             "Straßenbahn",
	"CityBus":          "Stadtbus",
	"IntercityBus":     "Regionalbus",
	"PlusBus":          "PlusBus",
	"SuburbanRailway":  "S-Bahn",
	"Train":            "Zug",
	"Cableway":         "Seil-/Schwebebahn",
	"Ferry":            "Fähre",
	"HailedSharedTaxi": "Anruflinientaxi",
	"Footpath":         "Fußweg",
}

// MotName resolves an upstream mode-of-transport code to its display
// name, falling back to the code itself for unknown modes.
func MotName(mot string) string {
	if name, ok := motNames[mot]; ok {
		return name
	}

	return mot
}
