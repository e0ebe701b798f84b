package routes

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ctsearch/pkg/ctdf"
	"github.com/travigo/ctsearch/pkg/search"
)

type Searcher interface {
	Search(ctx context.Context, params *ctdf.SearchParameters) ([]*ctdf.CTSearch, error)
}

func SearchRouter(router fiber.Router, searcher Searcher) {
	router.Post("/", func(c *fiber.Ctx) error {
		return searchTrains(c, searcher)
	})
}

func searchTrains(c *fiber.Ctx, searcher Searcher) error {
	params, err := search.ParseSearchParameters(c.Body())
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	results, err := searcher.Search(c.UserContext(), params)
	if err != nil {
		log.Error().Err(err).Bool("nostations", errors.Is(err, search.ErrNoStations)).Msg("Search failed")

		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Server internal error",
		})
	}

	resultsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, results)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Server internal error",
		})
	}

	return c.JSON(resultsReduced)
}
