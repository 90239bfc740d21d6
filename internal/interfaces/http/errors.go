package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-meias/internal/application/dto"
	"github.com/jhoicas/estoque-meias/internal/domain"
)

// Códigos de error de la API.
const (
	CodeInvalidBody        = "INVALID_BODY"
	CodeValidation         = "VALIDATION"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeMissingToken       = "MISSING_TOKEN"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeSessionEnded       = "SESSION_ENDED"
	CodeFetchFailed        = "FETCH_FAILED"
	CodeSubmissionRejected = "SUBMISSION_REJECTED"
	CodeBackendUnavailable = "BACKEND_UNAVAILABLE"
	CodeInternal           = "INTERNAL"
)

// msgInvalidBody cuerpo JSON no interpretable.
const msgInvalidBody = "Requisição inválida."

// writeError traduce los errores de la aplicación a respuestas HTTP.
// Message siempre es el texto que se muestra al usuario.
func writeError(c *fiber.Ctx, err error) error {
	var (
		vErr *domain.ValidationError
		aErr *domain.AuthError
		fErr *domain.FetchError
		sErr *domain.SubmissionError
	)
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: vErr.Message})
	case errors.As(err, &aErr):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthorized, Message: aErr.Message})
	case errors.As(err, &fErr):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: CodeFetchFailed, Message: fErr.Message})
	case errors.As(err, &sErr):
		if sErr.Rejected() {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: CodeSubmissionRejected, Message: sErr.Message})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: CodeBackendUnavailable, Message: sErr.Message})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: err.Error()})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: msgInvalidBody})
}

// refreshWarning texto a mostrar cuando la mutación se aplicó pero el catálogo no se recargó.
func refreshWarning(err error) string {
	if err == nil {
		return ""
	}
	var fErr *domain.FetchError
	if errors.As(err, &fErr) {
		return fErr.Message
	}
	return err.Error()
}
