package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/vvoproxy/vvoproxy/pkg/transform"
	"github.com/vvoproxy/vvoproxy/pkg/transit"
	"github.com/vvoproxy/vvoproxy/pkg/vvo"
)

func StationsRouter(router fiber.Router, client *vvo.Client) {
	router.Get("/", func(c *fiber.Ctx) error {
		return searchStations(c, client)
	})
}

func searchStations(c *fiber.Ctx, client *vvo.Client) error {
	query := c.Query("query")
	if query == "" {
		return &ValidationError{Message: "Parameter query is required"}
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return &ValidationError{Message: "Parameter limit should be an integer"}
	}

	result, err := client.PointFinder(c.UserContext(), query, limit)
	if err != nil {
		return err
	}

	stations := []transit.Station{}
	for _, point := range result.Points {
		stations = append(stations, mapStation(point))
	}

	return c.JSON(fiber.Map{
		"query":    query,
		"count":    len(stations),
		"stations": stations,
	})
}

func mapStation(point vvo.Point) transit.Station {
	latitude, longitude := transform.ScaleCoords(point.Coords)

	return transit.Station{
		ID:        point.ID,
		Name:      point.Name,
		City:      point.City,
		Type:      point.Type,
		Latitude:  latitude,
		Longitude: longitude,
	}
}
