package post

import (
	"testing"

	"github.com/misterbista/portfolio-api/internal/models"
)

func strptr(s string) *string { return &s }

// Field validation runs before any database access, so a nil-backed service
// is enough to exercise the rejection paths.
func TestCreateRejectsBlankTitle(t *testing.T) {
	svc := NewService(nil, nil)
	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Create(&CreatePostDTO{Title: title}); err == nil || err.Error() != "title is required" {
			t.Errorf("Create(title=%q) err = %v, want title is required", title, err)
		}
	}
}

func TestCreateRejectsUnderivableSlug(t *testing.T) {
	svc := NewService(nil, nil)
	if _, err := svc.Create(&CreatePostDTO{Title: "???"}); err == nil || err.Error() != "a slug could not be derived from the title" {
		t.Errorf("Create err = %v, want underivable slug error", err)
	}
}

func TestUpdateRejectsBlankTitle(t *testing.T) {
	svc := NewService(nil, nil)
	if _, err := svc.Update("some-id", &UpdatePostDTO{Title: strptr("   ")}); err == nil || err.Error() != "title is required" {
		t.Errorf("Update err = %v, want title is required", err)
	}
}

func TestUpdateRejectsUnderivableSlug(t *testing.T) {
	svc := NewService(nil, nil)
	if _, err := svc.Update("some-id", &UpdatePostDTO{Slug: strptr("!!!")}); err == nil || err.Error() != "a slug could not be derived from the title" {
		t.Errorf("Update err = %v, want underivable slug error", err)
	}
}

func TestToListItemNormalizesTags(t *testing.T) {
	item := toListItem(&models.PostModel{Title: "Untagged", Content: "a few words"})
	if item.Tags == nil {
		t.Error("nil tags should serialize as an empty list")
	}
	if item.ReadingTime < 1 {
		t.Errorf("reading time = %d, want at least 1", item.ReadingTime)
	}
}

func TestToDetailNormalizesCollections(t *testing.T) {
	detail := toDetail(&models.PostModel{Title: "Plain", Content: "no headings here"}, nil)
	if detail.Tags == nil {
		t.Error("nil tags should serialize as an empty list")
	}
	if detail.Toc == nil {
		t.Error("nil TOC should serialize as an empty list")
	}
	if detail.Position != nil {
		t.Errorf("position = %+v, want nil for posts outside a series", detail.Position)
	}
}
