package routes

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vvoproxy/vvoproxy/pkg/transform"
	"github.com/vvoproxy/vvoproxy/pkg/transit"
	"github.com/vvoproxy/vvoproxy/pkg/vvo"
)

func DeparturesRouter(router fiber.Router, client *vvo.Client, formatter *transform.Formatter) {
	router.Get("/:stationId", func(c *fiber.Ctx) error {
		return getDepartures(c, client, formatter)
	})
}

func getDepartures(c *fiber.Ctx, client *vvo.Client, formatter *transform.Formatter) error {
	stationID := c.Params("stationId")

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil {
		return &ValidationError{Message: "Parameter limit should be an integer"}
	}

	timeOffset, err := strconv.Atoi(c.Query("time_offset", "0"))
	if err != nil {
		return &ValidationError{Message: "Parameter time_offset should be an integer"}
	}

	when := time.Now().Add(time.Duration(timeOffset) * time.Minute)

	result, err := client.DepartureMonitor(c.UserContext(), stationID, when, limit)
	if err != nil {
		return err
	}

	departures := []transit.Departure{}
	for _, departure := range result.Departures {
		departures = append(departures, mapDeparture(departure, formatter))
	}

	return c.JSON(fiber.Map{
		"station_id":   stationID,
		"station_name": result.Name,
		"timestamp":    formatter.FullNow(),
		"count":        len(departures),
		"departures":   departures,
	})
}

func mapDeparture(raw vvo.Departure, formatter *transform.Formatter) transit.Departure {
	departure := transit.Departure{
		Line:          raw.LineName,
		Direction:     raw.Direction,
		Scheduled:     formatter.ShortTime(raw.ScheduledTime),
		ScheduledFull: formatter.FullDateTime(raw.ScheduledTime),
		Realtime:      formatter.ShortTime(raw.RealTime),
		RealtimeFull:  formatter.FullDateTime(raw.RealTime),
		State:         raw.State,
		RouteChanges:  []string{},
		LowFloor:      raw.Vehicle != nil && raw.Vehicle.Class != "",
	}

	if raw.Platform != nil {
		departure.Platform = raw.Platform.Name
	}
	if raw.Delay != nil {
		departure.Delay = *raw.Delay
	}
	if len(raw.RouteChanges) > 0 {
		departure.RouteChanges = raw.RouteChanges
	}

	return departure
}
