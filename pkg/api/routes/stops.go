package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vvoproxy/vvoproxy/pkg/transform"
	"github.com/vvoproxy/vvoproxy/pkg/transit"
	"github.com/vvoproxy/vvoproxy/pkg/vvo"
)

func StopsRouter(router fiber.Router, client *vvo.Client) {
	router.Get("/:lineId", func(c *fiber.Ctx) error {
		return getStops(c, client)
	})
}

func getStops(c *fiber.Ctx, client *vvo.Client) error {
	lineID := c.Params("lineId")

	result, err := client.StopsForLine(c.UserContext(), lineID)
	if err != nil {
		return err
	}

	stops := []transit.Stop{}
	for _, stop := range result.Stops {
		stops = append(stops, mapStop(stop))
	}

	return c.JSON(fiber.Map{
		"line_id": lineID,
		"count":   len(stops),
		"stops":   stops,
	})
}

func mapStop(raw vvo.Stop) transit.Stop {
	latitude, longitude := transform.ScaleCoords(raw.Coords)

	return transit.Stop{
		ID:        raw.ID,
		Name:      raw.Name,
		City:      raw.Place,
		Latitude:  latitude,
		Longitude: longitude,
	}
}
