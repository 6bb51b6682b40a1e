package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nihn/eurostartrainfinder/pkg/output"
	"github.com/nihn/eurostartrainfinder/pkg/search"
)

func JourneysRouter(router fiber.Router, service *search.Service) {
	router.Get("/", func(c *fiber.Ctx) error {
		return searchJourneys(c, service)
	})
}

func searchJourneys(c *fiber.Ctx, service *search.Service) error {
	defaults := search.DefaultOptions()

	options := search.Options{
		From:               c.Query("from", defaults.From),
		To:                 c.Query("to", defaults.To),
		Since:              c.Query("since", defaults.Since),
		Until:              c.Query("until", defaults.Until),
		Days:               c.Query("days"),
		Weekday:            c.Query("weekday"),
		OutDepartureAfter:  c.Query("out_after"),
		OutDepartureBefore: c.Query("out_before"),
		InDepartureAfter:   c.Query("in_after"),
		InDepartureBefore:  c.Query("in_before"),
		MaxPrice:           c.Query("max_price"),
		Where:              c.Query("where"),
		Adults:             c.Query("adults", defaults.Adults),
		SortBy:             c.Query("sort_by", defaults.SortBy),
	}

	request, err := options.Parse()
	if err != nil {
		return sendError(c, err)
	}

	found, err := service.Search(c.UserContext(), request)
	if err != nil {
		return sendError(c, err)
	}

	groups := []string{"basic"}
	if c.QueryBool("detailed", false) {
		groups = append(groups, "detailed")
	}

	journeysReduced, err := output.Reduce(output.NewJourneys(found), groups...)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Journeys",
		})
	}

	return c.JSON(fiber.Map{
		"count":    len(found),
		"journeys": journeysReduced,
	})
}
