package api

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mreg-project/mreg/internal/config"
	"github.com/mreg-project/mreg/internal/validation"
)

// Query parameters of list endpoints.
const (
	QueryPage     = "page"
	QueryPageSize = "page_size"
)

// Page is the body of list responses.
type Page struct {
	Count    int64 `json:"count"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Results  []any `json:"results"`
}

// Paginator reads page and page_size from list requests.
type Paginator struct {
	DefaultSize int
	MaxSize     int
}

// NewPaginator returns a paginator for the api settings.
func NewPaginator(cfg config.API) Paginator {
	return Paginator{DefaultSize: cfg.DefaultPageSize, MaxSize: cfg.MaxPageSize}
}

// Parse returns the requested page and page size. page_size is capped at MaxSize.
func (p Paginator) Parse(c *fiber.Ctx) (page, size int, err error) {
	page, err = positiveQuery(c, QueryPage, 1)
	if err != nil {
		return 0, 0, err
	}

	size, err = positiveQuery(c, QueryPageSize, p.DefaultSize)
	if err != nil {
		return 0, 0, err
	}

	if p.MaxSize > 0 && size > p.MaxSize {
		size = p.MaxSize
	}

	// the offset of the page must fit an int
	if size > 0 && page-1 > math.MaxInt/size {
		return 0, 0, &validation.FieldError{Field: QueryPage, Tag: "max", Value: c.Query(QueryPage)}
	}

	return page, size, nil
}

func positiveQuery(c *fiber.Ctx, key string, def int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return def, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, &validation.FieldError{Field: key, Tag: "min", Value: s}
	}

	return n, nil
}
