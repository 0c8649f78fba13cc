package routes

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vvoproxy/vvoproxy/pkg/transform"
	"github.com/vvoproxy/vvoproxy/pkg/transit"
	"github.com/vvoproxy/vvoproxy/pkg/vvo"
)

func TripRouter(router fiber.Router, client *vvo.Client, formatter *transform.Formatter) {
	router.Get("/", func(c *fiber.Ctx) error {
		return searchTrips(c, client, formatter)
	})
}

func searchTrips(c *fiber.Ctx, client *vvo.Client, formatter *transform.Formatter) error {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		return &ValidationError{Message: "Parameters from and to are required"}
	}

	when := time.Now()
	if timeQuery := c.Query("time"); timeQuery != "" {
		var err error
		when, err = formatter.Parse(timeQuery)
		if err != nil {
			return &ValidationError{Message: "Parameter time should be an RFC3339/ISO8601 datetime"}
		}
	}

	isArrival, err := strconv.ParseBool(c.Query("is_arrival", "false"))
	if err != nil {
		return &ValidationError{Message: "Parameter is_arrival should be a boolean"}
	}

	maxChanges, err := strconv.Atoi(c.Query("max_changes", "9"))
	if err != nil {
		return &ValidationError{Message: "Parameter max_changes should be an integer"}
	}

	result, err := client.Trips(c.UserContext(), from, to, when, isArrival, maxChanges)
	if err != nil {
		return err
	}

	trips := []transit.Trip{}
	for _, route := range result.Routes {
		trips = append(trips, mapTrip(route, formatter))
	}

	return c.JSON(fiber.Map{
		"from":      from,
		"to":        to,
		"timestamp": formatter.FullNow(),
		"count":     len(trips),
		"trips":     trips,
	})
}

func mapTrip(route vvo.Route, formatter *transform.Formatter) transit.Trip {
	trip := transit.Trip{
		Duration: route.Duration,
		Changes:  route.Interchanges,
		Legs:     []transit.Leg{},
	}

	for _, partial := range route.PartialRoutes {
		trip.Legs = append(trip.Legs, mapLeg(partial, formatter))
	}

	// Summaries come from the first stop of the first leg and the last
	// stop of the last leg; routes without stop data keep null summaries.
	if first := firstStop(route.PartialRoutes); first != nil {
		trip.Departure = transit.TripPoint{
			Time:     formatter.ShortTime(first.DepartureTime),
			TimeFull: formatter.FullDateTime(first.DepartureTime),
			Station:  &first.Name,
		}
	}
	if last := lastStop(route.PartialRoutes); last != nil {
		trip.Arrival = transit.TripPoint{
			Time:     formatter.ShortTime(last.ArrivalTime),
			TimeFull: formatter.FullDateTime(last.ArrivalTime),
			Station:  &last.Name,
		}
	}

	return trip
}

func mapLeg(partial vvo.PartialRoute, formatter *transform.Formatter) transit.Leg {
	leg := transit.Leg{
		Duration: partial.Duration,
	}

	if partial.Mot != nil {
		leg.Line = partial.Mot.Name
		leg.Direction = partial.Mot.Direction
	}

	if stops := partial.RegularStops; len(stops) > 0 {
		last := stops[len(stops)-1]

		leg.Departure = formatter.ShortTime(stops[0].DepartureTime)
		leg.DepartureFull = formatter.FullDateTime(stops[0].DepartureTime)
		leg.Arrival = formatter.ShortTime(last.ArrivalTime)
		leg.ArrivalFull = formatter.FullDateTime(last.ArrivalTime)
	}

	return leg
}

func firstStop(partials []vvo.PartialRoute) *vvo.TripStop {
	if len(partials) == 0 {
		return nil
	}

	stops := partials[0].RegularStops
	if len(stops) == 0 {
		return nil
	}

	return &stops[0]
}

func lastStop(partials []vvo.PartialRoute) *vvo.TripStop {
	if len(partials) == 0 {
		return nil
	}

	stops := partials[len(partials)-1].RegularStops
	if len(stops) == 0 {
		return nil
	}

	return &stops[len(stops)-1]
}
