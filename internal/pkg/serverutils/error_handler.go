package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ErrorHandlerMiddleware converts errors escaping a handler into the JSON
// error body. AppError carries its own status; anything else maps to 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return ErrorHandler(ctx, err)
	}
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		body := errorBody{Message: appErr.Message}
		if appErr.Err != nil {
			body.Error = appErr.Err.Error()
		}
		return ctx.Status(appErr.Code).JSON(body)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(errorBody{Message: fiberErr.Message})
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(errorBody{
		Message: "Internal server error",
		Error:   err.Error(),
	})
}
