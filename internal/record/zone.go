package record

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mreg-project/mreg/internal/db/models"
	"github.com/mreg-project/mreg/internal/db/repository"
	v "github.com/mreg-project/mreg/internal/validation"
)

// FieldNameservers is the zone nameserver list key.
const FieldNameservers = "nameservers"

// ZoneNameserversSchema declares the payload replacing a zone's nameservers.
var ZoneNameserversSchema = v.NewSchema(EntityZone,
	v.Field{Name: FieldNameservers, Type: v.TypeJSON, Required: true},
)

// ZoneNameservers resolves nameserver names of a zone update.
type ZoneNameservers struct {
	nameservers NameFinder[models.Ns]
}

// NewZoneNameservers creates a resolver looking names up through finder.
func NewZoneNameservers(finder NameFinder[models.Ns]) *ZoneNameservers {
	return &ZoneNameservers{nameservers: finder}
}

// Resolve validates raw and returns the named nameservers in request order.
// Duplicate names collapse into one entry, an empty list clears the zone.
func (z *ZoneNameservers) Resolve(ctx context.Context, raw map[string]any) ([]models.Ns, error) {
	payload, err := ZoneNameserversSchema.Validate(raw, false)
	if err != nil {
		return nil, err
	}

	var names []string

	rawList, _ := payload[FieldNameservers].(json.RawMessage)
	if err = json.Unmarshal(rawList, &names); err != nil {
		return nil, &v.FieldError{Field: FieldNameservers, Tag: v.TagType, Value: string(rawList)}
	}

	out := make([]models.Ns, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}

		if !v.IsDNSName(name) {
			return nil, &v.FieldError{Field: FieldNameservers, Tag: v.TagDNSName, Value: name}
		}

		ns, fErr := z.nameservers.FindByName(ctx, name)
		if fErr != nil {
			if errors.Is(fErr, repository.ErrRecordNotFound) {
				return nil, &v.NotFoundError{Entity: EntityNs, Field: FieldNameservers, Value: name}
			}

			return nil, fErr
		}

		out = append(out, *ns)
	}

	return out, nil
}
