package api

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mreg-project/mreg/internal/db/repository"
	"github.com/mreg-project/mreg/internal/record"
	"github.com/mreg-project/mreg/internal/web/handler"
)

// Path parameters of item routes.
const (
	ParamID   = "id"
	ParamName = "name"
)

// Ops selects the routes a resource mounts.
type Ops uint8

// Operations of a resource.
const (
	OpList Ops = 1 << iota
	OpCreate
	OpRetrieve
	OpUpdate
	OpDestroy

	// ItemOps are the operations on a single record.
	ItemOps = OpRetrieve | OpUpdate | OpDestroy
	// AllOps mounts every route.
	AllOps = OpList | OpCreate | ItemOps
)

// Presenter renders a stored record for a response.
type Presenter[T any] func(ctx context.Context, rec *T) (any, error)

// Resource serves list, create, retrieve, update and destroy for one record kind.
type Resource[T any] struct {
	entity    string
	repo      *repository.Repository[T]
	validator record.Validator[T]
	pages     Paginator
	present   Presenter[T]
}

// ResourceOption configures a Resource.
type ResourceOption[T any] func(*Resource[T])

// WithPresenter renders records through p instead of as stored.
func WithPresenter[T any](p Presenter[T]) ResourceOption[T] {
	return func(r *Resource[T]) {
		r.present = p
	}
}

// NewResource creates a resource named entity.
func NewResource[T any](
	entity string,
	repo *repository.Repository[T],
	validator record.Validator[T],
	pages Paginator,
	opts ...ResourceOption[T],
) *Resource[T] {
	r := &Resource[T]{
		entity:    entity,
		repo:      repo,
		validator: validator,
		pages:     pages,
		present: func(_ context.Context, rec *T) (any, error) {
			return rec, nil
		},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

type loader[T any] func(c *fiber.Ctx) (*T, error)

type deleter func(c *fiber.Ctx) error

func (r *Resource[T]) byID(c *fiber.Ctx) (*T, error) {
	id, err := pathID(c)
	if err != nil {
		return nil, err
	}

	return r.repo.FindByID(c.UserContext(), id)
}

func (r *Resource[T]) byName(c *fiber.Ctx) (*T, error) {
	return r.repo.FindByName(c.UserContext(), c.Params(ParamName))
}

func (r *Resource[T]) deleteByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	return r.repo.Delete(c.UserContext(), id)
}

func (r *Resource[T]) deleteByName(c *fiber.Ctx) error {
	return r.repo.DeleteByName(c.UserContext(), c.Params(ParamName))
}

// pathID parses the id parameter. Ids that can not exist are reported as not found.
func pathID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params(ParamID), 10, 0)
	if err != nil || id == 0 {
		return 0, repository.ErrRecordNotFound
	}

	return uint(id), nil
}

// Mount registers the selected routes on router, items keyed by id.
func (r *Resource[T]) Mount(router fiber.Router, ops Ops) {
	if ops&OpList != 0 {
		router.Get(handler.RootPath, r.List)
	}

	if ops&OpCreate != 0 {
		router.Post(handler.RootPath, r.Create)
	}

	r.mountItem(router, "/:"+ParamID, ops, r.byID, r.deleteByID)
}

// MountByName registers the selected item routes keyed by the name column below /name.
func (r *Resource[T]) MountByName(router fiber.Router, ops Ops) {
	r.mountItem(router, "/name/:"+ParamName, ops, r.byName, r.deleteByName)
}

func (r *Resource[T]) mountItem(router fiber.Router, path string, ops Ops, load loader[T], del deleter) {
	if ops&OpRetrieve != 0 {
		router.Get(path, r.retrieve(load))
	}

	if ops&OpUpdate != 0 {
		router.Patch(path, r.update(load, true))
		router.Put(path, r.update(load, false))
	}

	if ops&OpDestroy != 0 {
		router.Delete(path, r.destroy(del))
	}
}

func (r *Resource[T]) respond(c *fiber.Ctx, status int, rec *T) error {
	out, err := r.present(c.UserContext(), rec)
	if err != nil {
		return respondError(c, r.entity, err)
	}

	return c.Status(status).JSON(out)
}

// List serves one page of records.
func (r *Resource[T]) List(c *fiber.Ctx) error {
	page, size, err := r.pages.Parse(c)
	if err != nil {
		return respondError(c, r.entity, err)
	}

	ctx := c.UserContext()

	rows, total, err := r.repo.List(ctx, page, size)
	if err != nil {
		return respondError(c, r.entity, err)
	}

	results := make([]any, 0, len(rows))

	for i := range rows {
		out, pErr := r.present(ctx, &rows[i])
		if pErr != nil {
			return respondError(c, r.entity, pErr)
		}

		results = append(results, out)
	}

	return c.JSON(Page{Count: total, Page: page, PageSize: size, Results: results})
}

// Create validates the body, stores a new record and answers 201.
func (r *Resource[T]) Create(c *fiber.Ctx) error {
	raw, err := decodeBody(c)
	if err != nil {
		return respondError(c, r.entity, err)
	}

	return r.create(c, raw)
}

func (r *Resource[T]) create(c *fiber.Ctx, raw map[string]any) error {
	ctx := c.UserContext()

	payload, err := r.validator.Validate(ctx, raw, nil)
	if err != nil {
		return respondError(c, r.entity, err)
	}

	rec, err := record.Apply[T](nil, payload)
	if err != nil {
		return respondError(c, r.entity, err)
	}

	if err = r.repo.Create(ctx, rec); err != nil {
		return respondError(c, r.entity, err)
	}

	return r.respond(c, fiber.StatusCreated, rec)
}

func (r *Resource[T]) retrieve(load loader[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := load(c)
		if err != nil {
			return respondError(c, r.entity, err)
		}

		return r.respond(c, fiber.StatusOK, rec)
	}
}

// update handles PATCH (partial) and PUT (every required field) on a loaded record.
func (r *Resource[T]) update(load loader[T], partial bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		current, err := load(c)
		if err != nil {
			return respondError(c, r.entity, err)
		}

		raw, err := decodeBody(c)
		if err != nil {
			return respondError(c, r.entity, err)
		}

		against := current
		if !partial {
			against = nil
		}

		payload, err := r.validator.Validate(ctx, raw, against)
		if err != nil {
			return respondError(c, r.entity, err)
		}

		next, err := record.Apply(current, payload)
		if err != nil {
			return respondError(c, r.entity, err)
		}

		if err = r.repo.Save(ctx, next); err != nil {
			return respondError(c, r.entity, err)
		}

		return r.respond(c, fiber.StatusOK, next)
	}
}

func (r *Resource[T]) destroy(del deleter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := del(c); err != nil {
			return respondError(c, r.entity, err)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
