package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nihn/eurostartrainfinder/pkg/config"
)

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    "trainfinder",
		"version": config.Version,
	})
}
