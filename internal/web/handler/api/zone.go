package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/mreg-project/mreg/internal/db/models"
	"github.com/mreg-project/mreg/internal/db/repository"
	"github.com/mreg-project/mreg/internal/record"
)

const associationNameservers = "Nameservers"

// Zones serves zones and their nameserver set.
type Zones struct {
	*Resource[models.Zone]
	repo        *repository.Repository[models.Zone]
	nameservers *record.ZoneNameservers
}

func presentZone(_ context.Context, z *models.Zone) (any, error) {
	if z.Nameservers == nil {
		z.Nameservers = []models.Ns{}
	}

	return z, nil
}

// NewZones builds the zone resource. repo must preload Nameservers.
func NewZones(repo *repository.Repository[models.Zone], ns *record.ZoneNameservers, pages Paginator) *Zones {
	return &Zones{
		Resource:    NewResource[models.Zone](record.EntityZone, repo, record.ZoneValidator, pages, WithPresenter(presentZone)),
		repo:        repo,
		nameservers: ns,
	}
}

// Mount registers the zone routes on router.
func (z *Zones) Mount(router fiber.Router) {
	z.Resource.Mount(router, AllOps)
	router.Patch("/:"+ParamID+"/"+record.FieldNameservers, z.SetNameservers)
}

// SetNameservers replaces the nameservers of a zone with the named ones.
func (z *Zones) SetNameservers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	zone, err := z.byID(c)
	if err != nil {
		return respondError(c, record.EntityZone, err)
	}

	raw, err := decodeBody(c)
	if err != nil {
		return respondError(c, record.EntityZone, err)
	}

	ns, err := z.nameservers.Resolve(ctx, raw)
	if err != nil {
		return respondError(c, record.EntityZone, err)
	}

	if len(ns) == 0 {
		err = z.repo.ClearAssociation(ctx, zone, associationNameservers)
	} else {
		err = z.repo.ReplaceAssociation(ctx, zone, associationNameservers, ns)
	}

	if err != nil {
		return respondError(c, record.EntityZone, err)
	}

	zone.Nameservers = ns

	return z.respond(c, fiber.StatusOK, zone)
}
