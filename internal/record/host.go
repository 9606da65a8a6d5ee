package record

import (
	"context"
	"errors"

	"github.com/mreg-project/mreg/internal/db/models"
	"github.com/mreg-project/mreg/internal/db/repository"
	"github.com/mreg-project/mreg/internal/validation"
)

// hostColumn is the column the nested host listings reference.
const hostColumn = "host_id"

// HostValidator validates host payloads and resolves the hinfo preset id.
type HostValidator struct {
	presets Finder[models.HinfoPreset]
}

// NewHostValidator creates a HostValidator resolving presets through finder.
func NewHostValidator(presets Finder[models.HinfoPreset]) *HostValidator {
	return &HostValidator{presets: presets}
}

// Schema returns HostSchema.
func (h *HostValidator) Schema() *validation.Schema {
	return HostSchema
}

// Validate implements Validator. A present hinfo holds the resolved *models.HinfoPreset
// afterwards, or nil when the client cleared it.
func (h *HostValidator) Validate(
	ctx context.Context,
	raw map[string]any,
	current *models.Host,
) (validation.Payload, error) {
	payload, err := HostSchema.Validate(hinfoByID(raw), current != nil)
	if err != nil {
		return nil, err
	}

	if !payload.Has(FieldHinfo) {
		return payload, nil
	}

	id := payload.Int(FieldHinfo)
	if id == nil {
		payload[FieldHinfo] = nil

		return payload, nil
	}

	preset, err := h.resolve(ctx, *id)
	if err != nil {
		return nil, err
	}

	payload[FieldHinfo] = preset

	return payload, nil
}

// hinfoByID replaces a nested preset object, as rendered on read, with its hinfoid so
// a host read back can be written again. raw itself is left untouched.
func hinfoByID(raw map[string]any) map[string]any {
	nested, ok := raw[FieldHinfo].(map[string]any)
	if !ok {
		return raw
	}

	id, ok := nested[FieldHinfoID]
	if !ok {
		return raw
	}

	out := make(map[string]any, len(raw))
	for k, val := range raw {
		out[k] = val
	}

	out[FieldHinfo] = id

	return out
}

func (h *HostValidator) resolve(ctx context.Context, id int64) (*models.HinfoPreset, error) {
	notFound := &validation.NotFoundError{Entity: EntityHinfoPreset, Field: FieldHinfo, Value: id}

	if id < 1 || h.presets == nil {
		return nil, notFound
	}

	preset, err := h.presets.FindByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, notFound
		}

		return nil, err
	}

	return preset, nil
}

// HostDetail is a host with its read only nested listings.
type HostDetail struct {
	models.Host
	Cnames       []models.Cname       `json:"cname"`
	Ipaddresses  []models.Ipaddress   `json:"ipaddress"`
	Txts         []models.Txt         `json:"txt"`
	PtrOverrides []models.PtrOverride `json:"ptr_override"`
}

// HostAggregate combines host validation with the nested read side.
type HostAggregate struct {
	*HostValidator
	cnames       Lister[models.Cname]
	ipaddresses  Lister[models.Ipaddress]
	txts         Lister[models.Txt]
	ptrOverrides Lister[models.PtrOverride]
}

// NewHostAggregate wires the host validator and the nested listers.
func NewHostAggregate(
	presets Finder[models.HinfoPreset],
	cnames Lister[models.Cname],
	ipaddresses Lister[models.Ipaddress],
	txts Lister[models.Txt],
	ptrOverrides Lister[models.PtrOverride],
) *HostAggregate {
	return &HostAggregate{
		HostValidator: NewHostValidator(presets),
		cnames:        cnames,
		ipaddresses:   ipaddresses,
		txts:          txts,
		ptrOverrides:  ptrOverrides,
	}
}

// Present assembles the nested listings of host from the records referencing it.
func (a *HostAggregate) Present(ctx context.Context, host *models.Host) (*HostDetail, error) {
	var (
		err    error
		detail = &HostDetail{Host: *host}
	)

	if detail.Cnames, err = a.cnames.ListReferencing(ctx, hostColumn, host.ID); err != nil {
		return nil, err
	}

	if detail.Ipaddresses, err = a.ipaddresses.ListReferencing(ctx, hostColumn, host.ID); err != nil {
		return nil, err
	}

	if detail.Txts, err = a.txts.ListReferencing(ctx, hostColumn, host.ID); err != nil {
		return nil, err
	}

	if detail.PtrOverrides, err = a.ptrOverrides.ListReferencing(ctx, hostColumn, host.ID); err != nil {
		return nil, err
	}

	return detail, nil
}

// ValidateRename validates a payload renaming a host.
func ValidateRename(raw map[string]any) (validation.Payload, error) {
	return HostNameSchema.Validate(raw, false)
}
