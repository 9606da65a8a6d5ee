package record

import (
	"context"
	"encoding/json"

	"github.com/mreg-project/mreg/internal/db/models"
	"github.com/mreg-project/mreg/internal/validation"
)

// Validator turns a raw write payload into a validated payload for T.
// current is the persisted record on update and nil on create.
type Validator[T any] interface {
	Schema() *validation.Schema
	Validate(ctx context.Context, raw map[string]any, current *T) (validation.Payload, error)
}

// Plain validates kinds that have no rules beyond their schema.
type Plain[T any] struct {
	schema *validation.Schema
}

// NewPlain returns a Plain validator for schema.
func NewPlain[T any](schema *validation.Schema) *Plain[T] {
	return &Plain[T]{schema: schema}
}

// Schema returns the validated schema.
func (p *Plain[T]) Schema() *validation.Schema {
	return p.schema
}

// Validate implements Validator.
func (p *Plain[T]) Validate(_ context.Context, raw map[string]any, current *T) (validation.Payload, error) {
	return p.schema.Validate(raw, current != nil)
}

// Apply returns a new T holding current (or the zero value) with payload laid over it.
// Keys absent from payload keep their current value, nil values clear the field.
func Apply[T any](current *T, payload validation.Payload) (*T, error) {
	var base T
	if current != nil {
		base = *current
	}

	b, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}

	merged := map[string]json.RawMessage{}
	if err = json.Unmarshal(b, &merged); err != nil {
		return nil, err
	}

	for k, val := range payload {
		raw, mErr := json.Marshal(val)
		if mErr != nil {
			return nil, &validation.FieldError{Field: k, Tag: validation.TagType, Value: val}
		}

		merged[k] = raw
	}

	if b, err = json.Marshal(merged); err != nil {
		return nil, err
	}

	var out T
	if err = json.Unmarshal(b, &out); err != nil {
		return nil, &validation.FieldError{Field: validation.NonFieldErrors, Tag: validation.TagType, Value: err.Error()}
	}

	return &out, nil
}

// Validators for the kinds that only run their schema.
var (
	CnameValidator          = NewPlain[models.Cname](CnameSchema)
	HinfoPresetValidator    = NewPlain[models.HinfoPreset](HinfoPresetSchema)
	IpaddressValidator      = NewPlain[models.Ipaddress](IpaddressSchema)
	TxtValidator            = NewPlain[models.Txt](TxtSchema)
	PtrOverrideValidator    = NewPlain[models.PtrOverride](PtrOverrideSchema)
	NaptrValidator          = NewPlain[models.Naptr](NaptrSchema)
	NsValidator             = NewPlain[models.Ns](NsSchema)
	SrvValidator            = NewPlain[models.Srv](SrvSchema)
	SubnetValidator         = NewPlain[models.Subnet](SubnetSchema)
	ZoneValidator           = NewPlain[models.Zone](ZoneSchema)
	ModelChangeLogValidator = NewPlain[models.ModelChangeLog](ModelChangeLogSchema)
	LabelValidator          = NewPlain[models.Label](LabelSchema)
)
