// Package httputil contains helpers for gin handlers.
package httputil

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fi-rise/backend/internal/validation"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// MaxBodySize is the largest request body accepted, in bytes.
const MaxBodySize = 1 << 20

var ErrBodyTooLarge = fmt.Errorf("the request body must not be larger than %d bytes", MaxBodySize)

// Payload reads the request body and checks it against the schema.
//
// Errors reading the body are returned directly. Schema violations are
// recorded on the payload, see validation.Payload.
func Payload(c *gin.Context, schema validation.Schema) (*validation.Payload, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrBodyTooLarge
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return nil, validation.ErrInvalidJSON
	}

	return validation.Parse(schema, body)
}
