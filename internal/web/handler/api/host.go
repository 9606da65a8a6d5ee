package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/mreg-project/mreg/internal/db/models"
	"github.com/mreg-project/mreg/internal/db/repository"
	"github.com/mreg-project/mreg/internal/record"
)

// Hosts serves hosts with their nested listings.
type Hosts struct {
	*Resource[models.Host]
	repo *repository.Repository[models.Host]
}

// NewHosts builds the host resource presenting records through agg.
func NewHosts(repo *repository.Repository[models.Host], agg *record.HostAggregate, pages Paginator) *Hosts {
	present := func(ctx context.Context, h *models.Host) (any, error) {
		return agg.Present(ctx, h)
	}

	return &Hosts{
		Resource: NewResource[models.Host](record.EntityHost, repo, agg, pages, WithPresenter(present)),
		repo:     repo,
	}
}

// Mount registers the host routes on router.
func (h *Hosts) Mount(router fiber.Router) {
	h.Resource.Mount(router, AllOps)
	h.MountByName(router, ItemOps)
	router.Patch("/:"+ParamID+"/name", h.Rename)
}

// Rename changes only the name of a host.
func (h *Hosts) Rename(c *fiber.Ctx) error {
	host, err := h.byID(c)
	if err != nil {
		return respondError(c, record.EntityHost, err)
	}

	raw, err := decodeBody(c)
	if err != nil {
		return respondError(c, record.EntityHost, err)
	}

	payload, err := record.ValidateRename(raw)
	if err != nil {
		return respondError(c, record.EntityHost, err)
	}

	host.Name, _ = payload.String(record.FieldName)

	if err = h.repo.Save(c.UserContext(), host); err != nil {
		return respondError(c, record.EntityHost, err)
	}

	return h.respond(c, fiber.StatusOK, host)
}
