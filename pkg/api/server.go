package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/vvoproxy/vvoproxy/pkg/api/routes"
	"github.com/vvoproxy/vvoproxy/pkg/config"
	"github.com/vvoproxy/vvoproxy/pkg/transform"
	"github.com/vvoproxy/vvoproxy/pkg/vvo"
)

// NewApp wires the fiber application: one route group per endpoint
// mapper, the uniform error envelope and the trailing 404 handler.
func NewApp(cfg *config.Config) (*fiber.App, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	formatter := transform.NewFormatter(location)
	client := vvo.NewClient(cfg.UpstreamURL, time.Duration(cfg.UpstreamTimeout)*time.Second)

	webApp := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})
	webApp.Use(NewLogger())

	routes.MiscRouter(webApp, formatter)
	routes.StationsRouter(webApp.Group("/stations"), client)
	routes.DeparturesRouter(webApp.Group("/departures"), client, formatter)
	routes.TripRouter(webApp.Group("/trip"), client, formatter)
	routes.LinesRouter(webApp.Group("/lines"), client)
	routes.StopsRouter(webApp.Group("/stops"), client)

	webApp.Use(notFound)

	return webApp, nil
}

func SetupServer(listen string, cfg *config.Config) error {
	webApp, err := NewApp(cfg)
	if err != nil {
		return err
	}

	log.Info().Str("listen", listen).Str("upstream", cfg.UpstreamURL).Msg("Starting web server")

	return webApp.Listen(listen)
}

// errorHandler is the single boundary converting any failure from any
// stage of a mapper into the two caller-facing envelope shapes.
func errorHandler(c *fiber.Ctx, err error) error {
	var validationError *routes.ValidationError
	if errors.As(err, &validationError) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Ungültige Anfrage",
			"message": validationError.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Fehler bei der Anfrage an die Verkehrsauskunft",
		"message": err.Error(),
	})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Unbekannter Endpunkt",
		"available_endpoints": []string{
			"/",
			"/stations",
			"/departures/:stationId",
			"/trip",
			"/lines/:stationId",
			"/stops/:lineId",
		},
	})
}
