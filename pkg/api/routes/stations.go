package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nihn/eurostartrainfinder/pkg/stations"
)

func StationsRouter(router fiber.Router, directory *stations.Directory) {
	router.Get("/", func(c *fiber.Ctx) error {
		names, err := directory.Names(c.UserContext())
		if err != nil {
			return sendError(c, err)
		}

		return c.JSON(fiber.Map{
			"stations": names,
		})
	})
}
