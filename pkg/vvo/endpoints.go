package vvo

const (
	// DefaultBaseURL is the base URL for the VVO web API
	DefaultBaseURL = "https://webapi.vvo-online.de"

	// EndpointPointFinder searches stations & points of interest by name
	// Params: query, limit, assignedstops, type_sf
	EndpointPointFinder = "/tr/pointfinder"

	// EndpointDepartureMonitor returns upcoming departures at a stop
	// Params: stopid, time, isarrival, limit
	EndpointDepartureMonitor = "/dm"

	// EndpointTrips returns routed trips between two stops
	// Params: origin, destination, time, isarrivaltime, maxchanges, shorttermchanges, walkingspeed
	EndpointTrips = "/tr/trips"

	// EndpointLines returns the lines serving a stop
	// Params: stopid
	EndpointLines = "/stt/lines"

	// EndpointStops returns the stops served by a line
	// Params: lineid
	EndpointStops = "/stt/stops"
)
