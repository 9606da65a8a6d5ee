// Package repository provides generic gorm backed lookups and CRUD for the record models.
package repository

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultNameColumn = "name"
	orderByID         = "id ASC"
)

var (
	// ErrRecordNotFound is returned when no row matches a lookup.
	ErrRecordNotFound = errors.New("record not found")
	// ErrNameEmpty is returned when a name keyed operation is called with an empty name.
	ErrNameEmpty = errors.New("name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Option configures a Repository.
type Option func(*options)

type options struct {
	preloads   []string
	nameColumn string
}

// WithPreload loads the named associations on every read.
func WithPreload(associations ...string) Option {
	return func(o *options) {
		o.preloads = append(o.preloads, associations...)
	}
}

// WithNameColumn sets the column used by the name keyed operations. Default "name".
func WithNameColumn(column string) Option {
	return func(o *options) {
		o.nameColumn = column
	}
}

// Repository implements lookups, listings and writes for one model type.
type Repository[T any] struct {
	db   *gorm.DB
	opts options
}

// New creates a repository for T.
func New[T any](db *gorm.DB, opts ...Option) *Repository[T] {
	o := options{nameColumn: defaultNameColumn}
	for _, opt := range opts {
		opt(&o)
	}

	return &Repository[T]{db: db, opts: o}
}

func (r *Repository[T]) read(ctx context.Context) (*gorm.DB, error) {
	if r == nil || r.db == nil {
		return nil, ErrDBNil
	}

	tx := r.db.WithContext(ctx)
	for _, p := range r.opts.preloads {
		tx = tx.Preload(p)
	}

	return tx, nil
}

func (r *Repository[T]) write(ctx context.Context) (*gorm.DB, error) {
	if r == nil || r.db == nil {
		return nil, ErrDBNil
	}

	// associations are read only projections, only own columns are written
	return r.db.WithContext(ctx).Omit(clause.Associations), nil
}

func (r *Repository[T]) nameEq(name string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: r.opts.nameColumn}, Value: name}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}

	return err
}

// FindByID retrieves a record by its primary key.
func (r *Repository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	tx, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	var out T
	if err = tx.First(&out, id).Error; err != nil {
		return nil, notFound(err)
	}

	return &out, nil
}

// FindByName retrieves a record by its name column.
func (r *Repository[T]) FindByName(ctx context.Context, name string) (*T, error) {
	tx, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	if name == "" {
		return nil, ErrNameEmpty
	}

	var out T
	if err = tx.Where(r.nameEq(name)).First(&out).Error; err != nil {
		return nil, notFound(err)
	}

	return &out, nil
}

// ExistsByName reports whether a record with the given name exists.
func (r *Repository[T]) ExistsByName(ctx context.Context, name string) (bool, error) {
	if r == nil || r.db == nil {
		return false, ErrDBNil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where(r.nameEq(name)).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// ListReferencing returns every record whose column equals id, ordered by primary key.
func (r *Repository[T]) ListReferencing(ctx context.Context, column string, id uint) ([]T, error) {
	tx, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	out := []T{}
	err = tx.Where(clause.Eq{Column: clause.Column{Name: column}, Value: id}).Order(orderByID).Find(&out).Error
	if err != nil {
		return nil, err
	}

	return out, nil
}

// List returns one page of records and the total count. page starts at 1.
func (r *Repository[T]) List(ctx context.Context, page, pageSize int) ([]T, int64, error) {
	tx, err := r.read(ctx)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err = r.db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}

	out := []T{}
	if pageSize > 0 && page-1 > math.MaxInt/pageSize {
		return out, total, nil
	}

	if err = tx.Order(orderByID).Limit(pageSize).Offset((page - 1) * pageSize).Find(&out).Error; err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

// Create inserts a new record.
func (r *Repository[T]) Create(ctx context.Context, record *T) error {
	tx, err := r.write(ctx)
	if err != nil {
		return err
	}

	return tx.Create(record).Error
}

// Save updates every column of an existing record.
func (r *Repository[T]) Save(ctx context.Context, record *T) error {
	tx, err := r.write(ctx)
	if err != nil {
		return err
	}

	return tx.Save(record).Error
}

// Delete deletes a record by its primary key.
func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return ErrDBNil
	}

	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// DeleteByName deletes a record by its name column.
func (r *Repository[T]) DeleteByName(ctx context.Context, name string) error {
	if r == nil || r.db == nil {
		return ErrDBNil
	}

	if name == "" {
		return ErrNameEmpty
	}

	result := r.db.WithContext(ctx).Where(r.nameEq(name)).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// ReplaceAssociation replaces the association of record with values, a slice of the associated model.
func (r *Repository[T]) ReplaceAssociation(ctx context.Context, record *T, association string, values any) error {
	if r == nil || r.db == nil {
		return ErrDBNil
	}

	return r.db.WithContext(ctx).Model(record).Association(association).Replace(values)
}

// ClearAssociation removes every reference of record's association without deleting the associated rows.
func (r *Repository[T]) ClearAssociation(ctx context.Context, record *T, association string) error {
	if r == nil || r.db == nil {
		return ErrDBNil
	}

	return r.db.WithContext(ctx).Model(record).Association(association).Clear()
}
