package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nihn/eurostartrainfinder/pkg/api/routes"
	"github.com/nihn/eurostartrainfinder/pkg/search"
)

func NewServer(service *search.Service) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.StationsRouter(group.Group("/stations"), service.Stations)
	routes.JourneysRouter(group.Group("/journeys"), service)

	return webApp
}

func SetupServer(listen string, service *search.Service) error {
	return NewServer(service).Listen(listen)
}
