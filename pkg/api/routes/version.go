package routes

import "github.com/gofiber/fiber/v2"

const APIVersionNumber = "v1.0"

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": APIVersionNumber,
	})
}
