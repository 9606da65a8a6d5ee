package record

import (
	"context"
)

// Finder resolves a record by primary key.
type Finder[T any] interface {
	FindByID(ctx context.Context, id uint) (*T, error)
}

// Lister lists the records whose column references id.
type Lister[T any] interface {
	ListReferencing(ctx context.Context, column string, id uint) ([]T, error)
}

// NameChecker reports whether a record with a given name exists.
type NameChecker interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// NameFinder resolves a record by its name.
type NameFinder[T any] interface {
	FindByName(ctx context.Context, name string) (*T, error)
}
