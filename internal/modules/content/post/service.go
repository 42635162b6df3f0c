package post

import (
	"errors"
	"fmt"
	"strings"

	"github.com/misterbista/portfolio-api/internal/database"
	"github.com/misterbista/portfolio-api/internal/models"
	"github.com/misterbista/portfolio-api/internal/modules/content/tag"
	"github.com/misterbista/portfolio-api/internal/pkg/pagination"
	"github.com/misterbista/portfolio-api/internal/pkg/response"
	"github.com/misterbista/portfolio-api/internal/pkg/slugify"
	"gorm.io/gorm"
)

// Service handles post business logic.
type Service struct {
	db   *gorm.DB
	tags *tag.Service
}

func NewService(db *gorm.DB, tags *tag.Service) *Service {
	return &Service{db: db, tags: tags}
}

// publicOrder is the total order of the public listing. The id tiebreaker
// keeps pagination stable when posts share a creation timestamp.
const publicOrder = "posts.created_at DESC, posts.id DESC"

// List returns one page of published posts with all filters AND-composed. A
// category or tag slug that resolves to nothing yields an empty page rather
// than an error, and a tag with no associations short-circuits before the
// main query.
func (s *Service) List(q pagination.Query, lq ListQuery) ([]models.PostModel, response.Pagination, error) {
	tx := s.db.Model(&models.PostModel{}).
		Preload("Category").
		Preload("Tags").
		Where("posts.published = ?", true).
		Order(publicOrder)

	if search := strings.TrimSpace(lq.Search); search != "" {
		like := "%" + search + "%"
		tx = tx.Where("(posts.title LIKE ? OR posts.excerpt LIKE ?)", like, like)
	}

	if lq.Category != "" {
		var cat models.CategoryModel
		err := s.db.Select("id").Where("slug = ?", lq.Category).First(&cat).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pagination.Meta(0, q), nil
		}
		if err != nil {
			return nil, response.Pagination{}, err
		}
		tx = tx.Where("posts.category_id = ?", cat.ID)
	}

	if lq.Tag != "" {
		postIDs, err := s.postIDsForTag(lq.Tag)
		if err != nil {
			return nil, response.Pagination{}, err
		}
		if len(postIDs) == 0 {
			return nil, pagination.Meta(0, q), nil
		}
		tx = tx.Where("posts.id IN ?", postIDs)
	}

	var posts []models.PostModel
	pag, err := pagination.Paginate(tx, q, &posts)
	return posts, pag, err
}

// postIDsForTag resolves a tag slug to the ids of its associated posts. An
// unknown slug or a tag nobody uses returns an empty slice.
func (s *Service) postIDsForTag(slug string) ([]string, error) {
	var t models.TagModel
	err := s.db.Select("id").Where("slug = ?", slug).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var postIDs []string
	err = s.db.Model(&models.PostTagModel{}).
		Where("tag_id = ?", t.ID).
		Pluck("post_id", &postIDs).Error
	return postIDs, err
}

// AdminList returns every post, drafts included, newest first.
func (s *Service) AdminList(q pagination.Query) ([]models.PostModel, response.Pagination, error) {
	tx := s.db.Model(&models.PostModel{}).
		Preload("Category").
		Preload("Series").
		Preload("Tags").
		Order(publicOrder)

	var posts []models.PostModel
	pag, err := pagination.Paginate(tx, q, &posts)
	return posts, pag, err
}

// GetBySlug fetches a single post by slug. Unpublished posts are only visible
// when includeDrafts is set.
func (s *Service) GetBySlug(slug string, includeDrafts bool) (*models.PostModel, error) {
	tx := s.db.Preload("Category").Preload("Series").Preload("Tags").
		Where("slug = ?", slug)
	if !includeDrafts {
		tx = tx.Where("published = ?", true)
	}
	var post models.PostModel
	if err := tx.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetByID fetches a single post by ID regardless of publish state.
func (s *Service) GetByID(id string) (*models.PostModel, error) {
	var post models.PostModel
	err := s.db.Preload("Category").Preload("Series").Preload("Tags").
		First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post and syncs its tag associations.
func (s *Service) Create(dto *CreatePostDTO) (*models.PostModel, error) {
	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	slug := strings.TrimSpace(dto.Slug)
	if slug == "" {
		slug = slugify.Make(title)
	} else {
		slug = slugify.Make(slug)
	}
	if slug == "" {
		return nil, fmt.Errorf("a slug could not be derived from the title")
	}

	var count int64
	s.db.Model(&models.PostModel{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("slug already exists")
	}

	post := models.PostModel{
		Title:       title,
		Slug:        slug,
		Excerpt:     dto.Excerpt,
		Content:     dto.Content,
		CategoryID:  dto.CategoryID,
		SeriesID:    dto.SeriesID,
		SeriesOrder: dto.SeriesOrder,
	}
	if dto.Published != nil {
		post.Published = *dto.Published
	}

	if err := s.db.Create(&post).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, fmt.Errorf("slug already exists")
		}
		return nil, err
	}

	if len(dto.Tags) > 0 {
		tags, err := s.tags.SyncPost(post.ID, dto.Tags)
		if err != nil {
			return nil, err
		}
		post.Tags = tags
	}
	return &post, nil
}

// Update patches a post by ID, then reconciles tag associations when the
// request carries a tag list. Field validation runs before any read or write
// so a bad payload never touches the row. The post write lands first; a
// failed tag sync surfaces as an error without rolling the post back.
func (s *Service) Update(id string, dto *UpdatePostDTO) (*models.PostModel, error) {
	if dto.Title != nil && strings.TrimSpace(*dto.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	var newSlug string
	if dto.Slug != nil {
		newSlug = slugify.Make(*dto.Slug)
		if newSlug == "" {
			return nil, fmt.Errorf("a slug could not be derived from the title")
		}
	}

	post, err := s.GetByID(id)
	if err != nil || post == nil {
		return post, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = strings.TrimSpace(*dto.Title)
	}
	if dto.Slug != nil && newSlug != post.Slug {
		var count int64
		s.db.Model(&models.PostModel{}).Where("slug = ? AND id <> ?", newSlug, id).Count(&count)
		if count > 0 {
			return nil, fmt.Errorf("slug already exists")
		}
		updates["slug"] = newSlug
	}
	if dto.Excerpt != nil {
		updates["excerpt"] = *dto.Excerpt
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.Published != nil {
		updates["published"] = *dto.Published
	}
	if dto.CategoryID != nil {
		updates["category_id"] = *dto.CategoryID
	}
	if dto.SeriesID != nil {
		updates["series_id"] = *dto.SeriesID
	}
	if dto.SeriesOrder != nil {
		updates["series_order"] = *dto.SeriesOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(post).Updates(updates).Error; err != nil {
			if database.IsDuplicateKey(err) {
				return nil, fmt.Errorf("slug already exists")
			}
			return nil, err
		}
	}

	if dto.Tags != nil {
		tags, err := s.tags.SyncPost(post.ID, dto.Tags)
		if err != nil {
			return nil, err
		}
		post.Tags = tags
	}
	return post, nil
}

// Delete removes a post along with its tag associations and reactions.
func (s *Service) Delete(id string) error {
	_ = s.tags.ClearPost(id)
	s.db.Delete(&models.PostReactionModel{}, "post_id = ?", id)
	return s.db.Delete(&models.PostModel{}, "id = ?", id).Error
}

// IncrementViewCount atomically increments the view counter.
func (s *Service) IncrementViewCount(id string) error {
	return s.db.Model(&models.PostModel{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
