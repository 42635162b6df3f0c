package tag

import (
	"github.com/misterbista/portfolio-api/internal/models"
)

// diffAssociations compares the current and desired tag id sets and returns
// what must change. Ids present in both sets are untouched, so re-syncing an
// unchanged tag list issues zero writes.
func diffAssociations(current, desired []string) (toDelete, toInsert []string) {
	currentSet := make(map[string]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}
	desiredSet := make(map[string]struct{}, len(desired))
	for _, id := range desired {
		if _, dup := desiredSet[id]; dup {
			continue
		}
		desiredSet[id] = struct{}{}
		if _, ok := currentSet[id]; !ok {
			toInsert = append(toInsert, id)
		}
	}
	for _, id := range current {
		if _, ok := desiredSet[id]; !ok {
			toDelete = append(toDelete, id)
		}
	}
	return toDelete, toInsert
}

// SyncPost reconciles a post's tag associations against the given tag names.
// Names are resolved to tags via CreateOrGet, then only the association rows
// that actually differ are deleted or inserted. Partial failures are left as
// is; the next sync starts from whatever baseline the database now holds.
func (s *Service) SyncPost(postID string, names []string) ([]models.TagModel, error) {
	desired := make([]models.TagModel, 0, len(names))
	desiredIDs := make([]string, 0, len(names))
	for _, name := range names {
		t, err := s.CreateOrGet(name)
		if err != nil {
			return nil, err
		}
		desired = append(desired, *t)
		desiredIDs = append(desiredIDs, t.ID)
	}

	var currentIDs []string
	if err := s.db.Model(&models.PostTagModel{}).
		Where("post_id = ?", postID).
		Pluck("tag_id", &currentIDs).Error; err != nil {
		return nil, err
	}

	toDelete, toInsert := diffAssociations(currentIDs, desiredIDs)

	if len(toDelete) > 0 {
		if err := s.db.
			Where("post_id = ? AND tag_id IN ?", postID, toDelete).
			Delete(&models.PostTagModel{}).Error; err != nil {
			return nil, err
		}
	}
	for _, tagID := range toInsert {
		if err := s.db.Create(&models.PostTagModel{PostID: postID, TagID: tagID}).Error; err != nil {
			return nil, err
		}
	}

	return desired, nil
}

// ClearPost drops every association for a post. Used when a post is deleted.
func (s *Service) ClearPost(postID string) error {
	return s.db.Delete(&models.PostTagModel{}, "post_id = ?", postID).Error
}
