package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mreg-project/mreg/internal/db/repository"
	"github.com/mreg-project/mreg/internal/validation"
)

// Keys of the non field error bodies.
const (
	KeyDetail = "detail"
	KeyError  = "ERROR"
)

// Failure kinds counted by validationFailures.
const (
	kindUnknownField = "unknown_field"
	kindRange        = "range"
	kindNotFound     = "not_found"
	kindConflict     = "conflict"
	kindInvalid      = "invalid"
	kindParse        = "parse"
)

var validationFailures = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "validation_failures_total",
		Help: "Number of rejected write payloads, by entity and failure kind.",
	},
	[]string{"entity", "kind"},
)

// errParse marks request bodies that are not a JSON object.
var errParse = errors.New("JSON parse error")

func failureKind(err error) string {
	switch {
	case errors.Is(err, validation.ErrUnknownField):
		return kindUnknownField
	case errors.Is(err, validation.ErrRange):
		return kindRange
	case errors.Is(err, validation.ErrNotFound):
		return kindNotFound
	case errors.Is(err, validation.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		return kindConflict
	case errors.Is(err, errParse):
		return kindParse
	default:
		return kindInvalid
	}
}

// respondError maps err to the HTTP response for entity.
func respondError(c *fiber.Ctx, entity string, err error) error {
	switch {
	case errors.Is(err, validation.ErrConflict):
		validationFailures.WithLabelValues(entity, kindConflict).Inc()

		return c.Status(fiber.StatusConflict).JSON(validation.Details(err))

	case errors.Is(err, gorm.ErrDuplicatedKey):
		validationFailures.WithLabelValues(entity, kindConflict).Inc()

		return c.Status(fiber.StatusConflict).JSON(map[string][]string{
			validation.NonFieldErrors: {entity + " with this value already exists."},
		})

	case errors.Is(err, validation.ErrValidation):
		validationFailures.WithLabelValues(entity, failureKind(err)).Inc()

		return c.Status(fiber.StatusBadRequest).JSON(validation.Details(err))

	case errors.Is(err, errParse):
		validationFailures.WithLabelValues(entity, kindParse).Inc()

		return c.Status(fiber.StatusBadRequest).JSON(map[string][]string{
			validation.NonFieldErrors: {err.Error()},
		})

	case errors.Is(err, repository.ErrRecordNotFound), errors.Is(err, repository.ErrNameEmpty):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{KeyDetail: "Not found."})

	default:
		log.Error().Err(err).Str("entity", entity).Str("path", c.Path()).Msg("request failed")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{KeyDetail: "Internal server error."})
	}
}
