package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/misterbista/portfolio-api/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	DefaultPage = 1
	// PageSize is the fixed page size of the public blog listing.
	PageSize = 10
	MaxSize  = 100
)

// Query holds parsed pagination parameters.
type Query struct {
	Page int
	Size int
}

// FromContext extracts the 1-based page number from the request. Invalid or
// missing input defaults to page 1; the size is the fixed public page size.
func FromContext(c *gin.Context) Query {
	return Query{
		Page: ClampPage(c.DefaultQuery("page", "1")),
		Size: PageSize,
	}
}

// AdminFromContext additionally honors a size parameter, bounded to MaxSize.
// Only the admin listing uses this.
func AdminFromContext(c *gin.Context) Query {
	q := FromContext(c)
	if size := parseIntOr(c.DefaultQuery("size", "10"), PageSize); size >= 1 {
		q.Size = size
	}
	if q.Size > MaxSize {
		q.Size = MaxSize
	}
	return q
}

// ClampPage parses a raw page value, defaulting to 1 for anything that is not
// a positive integer.
func ClampPage(raw string) int {
	page := parseIntOr(raw, DefaultPage)
	if page < 1 {
		return DefaultPage
	}
	return page
}

// TotalPages is ceil(total / size); zero matches yield zero pages.
func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// Paginate applies limit/offset to a GORM query and returns the pagination
// metadata. The caller must have established a deterministic total order.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}

	offset := (q.Page - 1) * q.Size
	if err := db.Offset(offset).Limit(q.Size).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	return Meta(total, q), nil
}

// Meta builds pagination metadata without issuing queries.
func Meta(total int64, q Query) response.Pagination {
	totalPage := TotalPages(total, q.Size)
	return response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   totalPage,
		Size:        q.Size,
		HasNextPage: q.Page < totalPage,
	}
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
