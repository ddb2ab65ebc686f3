package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/fadilmartias/recruit-assistant/internal/usecase"
	"github.com/fadilmartias/recruit-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
)

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// fail maps usecase errors onto the error envelope. Unknown errors are 500s
// and logged.
func fail(c *fiber.Ctx, message string, err error) error {
	code := fiber.StatusInternalServerError
	var verr *usecase.ValidationError
	var ferr *fiber.Error
	switch {
	case errors.As(err, &verr):
		code, message = fiber.StatusBadRequest, verr.Message
	case errors.As(err, &ferr):
		code, message = ferr.Code, ferr.Message
	case errors.Is(err, usecase.ErrCandidateNotFound), errors.Is(err, usecase.ErrJobNotFound):
		code, message = fiber.StatusNotFound, err.Error()
	case errors.Is(err, usecase.ErrInvalidCredentials):
		code, message = fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, usecase.ErrEmailTaken), errors.Is(err, usecase.ErrDescriptionTooShort):
		code, message = fiber.StatusBadRequest, err.Error()
	default:
		slog.ErrorContext(c.UserContext(), message, "path", c.Path(), "error", err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Code: code, Message: message}, err)
}

func badRequest(c *fiber.Ctx, message string, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: message,
	}, err)
}
