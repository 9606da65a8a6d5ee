package record

import (
	"context"
	"errors"

	"github.com/mreg-project/mreg/internal/db/repository"
	"github.com/mreg-project/mreg/internal/validation"
)

// Reference checks that an integer field names an existing record.
type Reference struct {
	Field  string
	Entity string
	exists func(ctx context.Context, id uint) error
}

// RefTo builds a Reference resolved through finder.
func RefTo[R any](field, entity string, finder Finder[R]) Reference {
	return Reference{
		Field:  field,
		Entity: entity,
		exists: func(ctx context.Context, id uint) error {
			_, err := finder.FindByID(ctx, id)

			return err
		},
	}
}

func (r Reference) check(ctx context.Context, payload validation.Payload) error {
	id := payload.Int(r.Field)
	if id == nil {
		return nil
	}

	notFound := &validation.NotFoundError{Entity: r.Entity, Field: r.Field, Value: *id}
	if *id < 1 {
		return notFound
	}

	err := r.exists(ctx, uint(*id))
	if errors.Is(err, repository.ErrRecordNotFound) {
		return notFound
	}

	return err
}

// Referencing wraps a validator with reference checks run after its pipeline.
type Referencing[T any] struct {
	Validator[T]
	refs []Reference
}

// WithReferences returns inner extended by refs.
func WithReferences[T any](inner Validator[T], refs ...Reference) *Referencing[T] {
	return &Referencing[T]{Validator: inner, refs: refs}
}

// Validate implements Validator.
func (r *Referencing[T]) Validate(ctx context.Context, raw map[string]any, current *T) (validation.Payload, error) {
	payload, err := r.Validator.Validate(ctx, raw, current)
	if err != nil {
		return nil, err
	}

	for _, ref := range r.refs {
		if err = ref.check(ctx, payload); err != nil {
			return nil, err
		}
	}

	return payload, nil
}
