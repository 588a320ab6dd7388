package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"skillbite/utils"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// AppErrorResponse maps a pipeline error onto the JSON envelope with the HTTP
// status that matches its kind. Raw diagnostic text and structured details
// travel in the data payload.
func AppErrorResponse(c *fiber.Ctx, err error) error {
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		return JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	status := fiber.StatusInternalServerError
	switch appErr.Kind {
	case utils.ErrInvalidInput, utils.ErrInvalidIndex:
		status = fiber.StatusBadRequest
	case utils.ErrNotFound:
		status = fiber.StatusNotFound
	case utils.ErrModelRejectedInput:
		status = fiber.StatusUnprocessableEntity
	case utils.ErrQuotaExceeded:
		status = fiber.StatusTooManyRequests
	case utils.ErrExtractionFailure, utils.ErrTransport:
		status = fiber.StatusBadGateway
	}

	data := fiber.Map{"kind": appErr.Kind}
	if appErr.Raw != "" {
		data["raw"] = appErr.Raw
	}
	for k, v := range appErr.Data {
		data[k] = v
	}
	return JsonResponse(c, status, false, appErr.Message, data)
}
