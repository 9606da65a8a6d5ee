package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mreg-project/mreg/internal/db/models"
	"github.com/mreg-project/mreg/internal/record"
	"github.com/mreg-project/mreg/internal/web/handler"
)

// MsgLabelInUse is the conflict message of a duplicate label create.
const MsgLabelInUse = "Label name already in use"

// Labels serves labels by id and by name.
type Labels struct {
	*Resource[models.Label]
	names record.NameChecker
}

// NewLabels wraps resource with the duplicate name check of label creation.
func NewLabels(resource *Resource[models.Label], names record.NameChecker) *Labels {
	return &Labels{Resource: resource, names: names}
}

// Mount registers the label routes on router.
func (l *Labels) Mount(router fiber.Router) {
	router.Post(handler.RootPath, l.Create)
	l.Resource.Mount(router, OpList|ItemOps)
	l.MountByName(router, ItemOps)
}

// Create answers 409 without creating anything when the requested name is taken.
func (l *Labels) Create(c *fiber.Ctx) error {
	raw, err := decodeBody(c)
	if err != nil {
		return respondError(c, record.EntityLabel, err)
	}

	if name, ok := raw[record.FieldName].(string); ok {
		exists, eErr := l.names.ExistsByName(c.UserContext(), name)
		if eErr != nil {
			return respondError(c, record.EntityLabel, eErr)
		}

		if exists {
			validationFailures.WithLabelValues(record.EntityLabel, kindConflict).Inc()

			return c.Status(fiber.StatusConflict).JSON(fiber.Map{KeyError: MsgLabelInUse})
		}
	}

	return l.create(c, raw)
}
