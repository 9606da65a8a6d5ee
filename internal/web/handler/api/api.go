// Package api implements the REST endpoints of the record kinds.
package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mreg-project/mreg/internal/config"
	"github.com/mreg-project/mreg/internal/db/models"
	"github.com/mreg-project/mreg/internal/db/repository"
	"github.com/mreg-project/mreg/internal/record"
	"github.com/mreg-project/mreg/internal/web/handler"
)

// Collection paths below the api prefix.
const (
	PathHosts        = "/hosts"
	PathCnames       = "/cnames"
	PathHinfoPresets = "/hinfopresets"
	PathIpaddresses  = "/ipaddresses"
	PathTxts         = "/txts"
	PathPtrOverrides = "/ptroverrides"
	PathNaptrs       = "/naptrs"
	PathNameservers  = "/nameservers"
	PathSrvs         = "/srvs"
	PathSubnets      = "/subnets"
	PathZones        = "/zones"
	PathHistory      = "/history"
	PathLabels       = "/labels"
)

// Service is the REST api handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the REST api handler.
var Handler = Service{}

// Init builds the repositories and validators and mounts every collection on router.
func (s *Service) Init(router fiber.Router, cfg *config.Config, db *gorm.DB) error {
	if router == nil || cfg == nil || db == nil {
		log.Error().Msg(handler.ErrNilACDFatalLogMsg)

		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.db = db

	pages := NewPaginator(cfg.API)

	hosts := repository.New[models.Host](db, repository.WithPreload("Hinfo"))
	presets := repository.New[models.HinfoPreset](db)
	cnames := repository.New[models.Cname](db)
	ipaddresses := repository.New[models.Ipaddress](db)
	txts := repository.New[models.Txt](db)
	ptrOverrides := repository.New[models.PtrOverride](db)
	naptrs := repository.New[models.Naptr](db)
	nameservers := repository.New[models.Ns](db)
	srvs := repository.New[models.Srv](db)
	subnets := repository.New[models.Subnet](db)
	zones := repository.New[models.Zone](db, repository.WithPreload(associationNameservers))
	history := repository.New[models.ModelChangeLog](db)
	labels := repository.New[models.Label](db)

	hostRef := record.RefTo[models.Host](record.FieldHostID, record.EntityHost, hosts)
	agg := record.NewHostAggregate(presets, cnames, ipaddresses, txts, ptrOverrides)

	NewHosts(hosts, agg, pages).Mount(router.Group(PathHosts))

	NewResource[models.Cname](record.EntityCname, cnames,
		record.WithReferences[models.Cname](record.CnameValidator, hostRef), pages).
		Mount(router.Group(PathCnames), AllOps)

	NewResource[models.HinfoPreset](record.EntityHinfoPreset, presets, record.HinfoPresetValidator, pages).
		Mount(router.Group(PathHinfoPresets), AllOps)

	NewResource[models.Ipaddress](record.EntityIpaddress, ipaddresses,
		record.WithReferences[models.Ipaddress](record.IpaddressValidator, hostRef), pages).
		Mount(router.Group(PathIpaddresses), AllOps)

	NewResource[models.Txt](record.EntityTxt, txts,
		record.WithReferences[models.Txt](record.TxtValidator, hostRef), pages).
		Mount(router.Group(PathTxts), AllOps)

	NewResource[models.PtrOverride](record.EntityPtrOverride, ptrOverrides,
		record.WithReferences[models.PtrOverride](record.PtrOverrideValidator, hostRef), pages).
		Mount(router.Group(PathPtrOverrides), AllOps)

	NewResource[models.Naptr](record.EntityNaptr, naptrs,
		record.WithReferences[models.Naptr](record.NaptrValidator, hostRef), pages).
		Mount(router.Group(PathNaptrs), AllOps)

	nsResource := NewResource[models.Ns](record.EntityNs, nameservers, record.NsValidator, pages)
	nsGroup := router.Group(PathNameservers)
	nsResource.Mount(nsGroup, AllOps)
	nsResource.MountByName(nsGroup, ItemOps)

	NewResource[models.Srv](record.EntitySrv, srvs, record.SrvValidator, pages).
		Mount(router.Group(PathSrvs), AllOps)

	NewResource[models.Subnet](record.EntitySubnet, subnets, record.SubnetValidator, pages).
		Mount(router.Group(PathSubnets), AllOps)

	NewZones(zones, record.NewZoneNameservers(nameservers), pages).Mount(router.Group(PathZones))

	NewResource[models.ModelChangeLog](record.EntityModelChangeLog, history, record.ModelChangeLogValidator, pages).
		Mount(router.Group(PathHistory), OpList|OpCreate|OpRetrieve)

	NewLabels(NewResource[models.Label](record.EntityLabel, labels, record.LabelValidator, pages), labels).
		Mount(router.Group(PathLabels))

	return nil
}
