package handlers

import (
	"inventory/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodes a JSON body into out. An empty body leaves out untouched,
// which the caller sees as "no fields supplied".
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return apperrors.BadRequest("Invalid request body").Wrap(err)
	}
	return nil
}

// pathID reads a positive integer route parameter. Routes constrain the
// parameter to <int>, so only zero or negative values reach the error branch.
func pathID(c *fiber.Ctx, name, notFoundMessage string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, apperrors.NotFound(notFoundMessage)
	}
	return uint(id), nil
}
