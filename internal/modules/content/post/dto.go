package post

import (
	"time"

	"github.com/misterbista/portfolio-api/internal/models"
	"github.com/misterbista/portfolio-api/internal/modules/content/series"
	"github.com/misterbista/portfolio-api/internal/modules/processing/markdown"
)

// CreatePostDTO is the request body for creating a post. The slug derives
// from the title when omitted.
type CreatePostDTO struct {
	Title       string   `json:"title" binding:"required"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Published   *bool    `json:"published"`
	CategoryID  *string  `json:"category_id"`
	SeriesID    *string  `json:"series_id"`
	SeriesOrder *int     `json:"series_order"`
	Tags        []string `json:"tags"`
}

// UpdatePostDTO is the request body for updating a post (all fields optional).
type UpdatePostDTO struct {
	Title       *string  `json:"title"`
	Slug        *string  `json:"slug"`
	Excerpt     *string  `json:"excerpt"`
	Content     *string  `json:"content"`
	Published   *bool    `json:"published"`
	CategoryID  *string  `json:"category_id"`
	SeriesID    *string  `json:"series_id"`
	SeriesOrder *int     `json:"series_order"`
	Tags        []string `json:"tags"`
}

// ListQuery holds the public listing filters. All filters AND-compose.
type ListQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Tag      string `form:"tag"`
}

// postListItem is one row of the public listing. Content is omitted; the
// reading time is derived from it instead.
type postListItem struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Slug        string                `json:"slug"`
	Excerpt     string                `json:"excerpt"`
	ReadingTime int                   `json:"reading_time"`
	ViewCount   int                   `json:"view_count"`
	Category    *models.CategoryModel `json:"category"`
	Tags        []models.TagModel     `json:"tags"`
	SeriesID    *string               `json:"series_id"`
	Created     time.Time             `json:"created_at"`
}

func toListItem(p *models.PostModel) postListItem {
	tags := p.Tags
	if tags == nil {
		tags = []models.TagModel{}
	}
	return postListItem{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		ReadingTime: markdown.ReadingTime(p.Content),
		ViewCount:   p.ViewCount,
		Category:    p.Category,
		Tags:        tags,
		SeriesID:    p.SeriesID,
		Created:     p.CreatedAt,
	}
}

// postDetail is the full post payload: raw markdown for editing plus the
// rendered HTML, reading time, and table of contents the blog view consumes.
type postDetail struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Slug        string                `json:"slug"`
	Excerpt     string                `json:"excerpt"`
	Content     string                `json:"content"`
	HTML        string                `json:"html"`
	ReadingTime int                   `json:"reading_time"`
	Toc         []markdown.TocItem    `json:"toc"`
	Published   bool                  `json:"published"`
	ViewCount   int                   `json:"view_count"`
	Category    *models.CategoryModel `json:"category"`
	Tags        []models.TagModel     `json:"tags"`
	Series      *models.SeriesModel   `json:"series"`
	SeriesOrder *int                  `json:"series_order"`
	Position    *series.Position      `json:"series_position"`
	Created     time.Time             `json:"created_at"`
	Modified    time.Time             `json:"updated_at"`
}

func toDetail(p *models.PostModel, pos *series.Position) postDetail {
	tags := p.Tags
	if tags == nil {
		tags = []models.TagModel{}
	}
	toc := markdown.ExtractToc(p.Content)
	if toc == nil {
		toc = []markdown.TocItem{}
	}
	return postDetail{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		HTML:        markdown.Render(p.Content),
		ReadingTime: markdown.ReadingTime(p.Content),
		Toc:         toc,
		Published:   p.Published,
		ViewCount:   p.ViewCount,
		Category:    p.Category,
		Tags:        tags,
		Series:      p.Series,
		SeriesOrder: p.SeriesOrder,
		Position:    pos,
		Created:     p.CreatedAt,
		Modified:    p.UpdatedAt,
	}
}
