package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// errInvalidID indicates a route parameter was not a positive integer.
var errInvalidID = errors.New("invalid route ID")

// parseIDParam extracts a route parameter by name as a positive uint.
func parseIDParam(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}
