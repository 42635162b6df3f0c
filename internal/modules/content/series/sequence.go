package series

import (
	"fmt"

	"github.com/misterbista/portfolio-api/internal/models"
)

// Neighbor is an adjacent series member, enough for a prev/next link.
type Neighbor struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// Position locates one post inside its series' reading order.
type Position struct {
	Index int       `json:"index"`
	Total int       `json:"total"`
	Label string    `json:"label"`
	Prev  *Neighbor `json:"prev"`
	Next  *Neighbor `json:"next"`
}

// Sequence resolves a post's position among the ordered series members. The
// members slice must already be sorted by series_order ascending; a slug not
// present in the members yields nil.
func Sequence(members []models.PostModel, currentSlug string) *Position {
	index := -1
	for i, m := range members {
		if m.Slug == currentSlug {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	pos := &Position{
		Index: index,
		Total: len(members),
		Label: fmt.Sprintf("Part %d of %d", index+1, len(members)),
	}
	if index > 0 {
		pos.Prev = &Neighbor{Title: members[index-1].Title, Slug: members[index-1].Slug}
	}
	if index < len(members)-1 {
		pos.Next = &Neighbor{Title: members[index+1].Title, Slug: members[index+1].Slug}
	}
	return pos
}
