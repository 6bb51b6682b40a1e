package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nihn/eurostartrainfinder/pkg/eurostar"
)

// isUpstreamError reports whether err came from talking to the train search API
// rather than from the request itself
func isUpstreamError(err error) bool {
	var clientError *eurostar.ClientError
	var serverError *eurostar.ServerError
	var malformedError *eurostar.MalformedResponseError
	var transportError *eurostar.TransportError

	return errors.As(err, &clientError) ||
		errors.As(err, &serverError) ||
		errors.As(err, &malformedError) ||
		errors.As(err, &transportError) ||
		errors.Is(err, eurostar.ErrEmptyStationDirectory)
}

func sendError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	if isUpstreamError(err) {
		status = fiber.StatusBadGateway
	}

	c.Status(status)
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}
