package controllers

import (
	"errors"
	"net/http"

	"github.com/fi-rise/backend/internal/httputil"
	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/validation"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string `json:"error" example:"there is no expense matching your query"`
}

type validationError struct {
	Error  string                  `json:"error" example:"validation failed"`
	Fields []validation.FieldError `json:"fields"`
}

// status returns the HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, validation.ErrValidation),
		errors.Is(err, validation.ErrEmptyBody),
		errors.Is(err, validation.ErrInvalidJSON),
		errors.Is(err, models.ErrUsernameNotUnique):
		return http.StatusBadRequest
	case errors.Is(err, httputil.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

// writeError writes the response for an error.
//
// Internal errors are logged and answered with a general message.
func writeError(c *gin.Context, err error) {
	code := status(err)

	if fields, ok := validation.Fields(err); ok {
		c.JSON(code, validationError{
			Error:  validation.ErrValidation.Error(),
			Fields: fields,
		})
		return
	}

	if code == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		c.JSON(code, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	c.JSON(code, httpError{Error: err.Error()})
}
