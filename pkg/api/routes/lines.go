package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vvoproxy/vvoproxy/pkg/transform"
	"github.com/vvoproxy/vvoproxy/pkg/transit"
	"github.com/vvoproxy/vvoproxy/pkg/vvo"
)

func LinesRouter(router fiber.Router, client *vvo.Client) {
	router.Get("/:stationId", func(c *fiber.Ctx) error {
		return getLines(c, client)
	})
}

func getLines(c *fiber.Ctx, client *vvo.Client) error {
	stationID := c.Params("stationId")

	result, err := client.LinesForStop(c.UserContext(), stationID)
	if err != nil {
		return err
	}

	lines := []transit.Line{}
	for _, line := range result.Lines {
		lines = append(lines, mapLine(line))
	}

	return c.JSON(fiber.Map{
		"station_id": stationID,
		"count":      len(lines),
		"lines":      lines,
	})
}

func mapLine(raw vvo.Line) transit.Line {
	line := transit.Line{
		ID:         raw.ID,
		Name:       raw.Name,
		Mot:        raw.Mot,
		MotName:    transform.MotName(raw.Mot),
		Directions: []string{},
	}

	if len(raw.Directions) > 0 {
		line.Directions = raw.Directions
	}

	return line
}
