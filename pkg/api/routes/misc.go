package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vvoproxy/vvoproxy/pkg/transform"
)

const APIVersion = "v1.0"

func MiscRouter(router fiber.Router, formatter *transform.Formatter) {
	router.Get("/", apiIndex)
	router.Get("/health", func(c *fiber.Ctx) error {
		return getHealth(c, formatter)
	})
}

func apiIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    "vvo-proxy",
		"version": APIVersion,
		"endpoints": fiber.Map{
			"/stations":               "Haltestellensuche (?query=, ?limit=)",
			"/departures/:stationId":  "Abfahrtsmonitor (?limit=, ?time_offset=)",
			"/trip":                   "Verbindungssuche (?from=, ?to=, ?time=, ?is_arrival=, ?max_changes=)",
			"/lines/:stationId":       "Linien an einer Haltestelle",
			"/stops/:lineId":          "Haltestellen einer Linie",
			"/health":                 "Statusabfrage",
		},
		"data": fiber.Map{
			"stations":   "Haltestellen mit Koordinaten und Ortsangabe",
			"departures": "Abfahrten mit Echtzeitdaten und Verspätungen",
			"trips":      "Verbindungen mit Umstiegen und Teilstrecken",
			"lines":      "Linien mit Verkehrsmittel und Richtungen",
			"stops":      "Haltestellen entlang einer Linie",
		},
	})
}

func getHealth(c *fiber.Ctx, formatter *transform.Formatter) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": formatter.FullNow(),
	})
}
