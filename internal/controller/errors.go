package controller

import (
	"errors"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// statusOf maps a service error to the HTTP status reported for it.
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, engine.ErrOutOfBounds),
		errors.Is(err, model.ErrUnknownPiece),
		errors.Is(err, model.ErrPromotionRequired):
		return fiber.StatusBadRequest
	case errors.Is(err, engine.ErrInvalidMove),
		errors.Is(err, engine.ErrGameOver),
		errors.Is(err, engine.ErrNothingToUndo),
		errors.Is(err, model.ErrNothingToRedo):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

func sendError(c *fiber.Ctx, err error) error {
	return c.Status(statusOf(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
