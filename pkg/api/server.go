package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/ctsearch/pkg/api/routes"
)

func NewApp(searcher routes.Searcher) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	webApp.Get("version", routes.APIVersion)

	routes.SearchRouter(webApp.Group("/search"), searcher)

	return webApp
}

func SetupServer(listen string, searcher routes.Searcher) error {
	return NewApp(searcher).Listen(listen)
}
