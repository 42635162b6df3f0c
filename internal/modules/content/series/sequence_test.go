package series

import (
	"testing"

	"github.com/misterbista/portfolio-api/internal/models"
)

func member(title, slug string) models.PostModel {
	return models.PostModel{Title: title, Slug: slug}
}

func TestSequenceMiddle(t *testing.T) {
	members := []models.PostModel{
		member("Part One", "part-one"),
		member("Part Two", "part-two"),
		member("Part Three", "part-three"),
	}

	pos := Sequence(members, "part-two")
	if pos == nil {
		t.Fatal("expected a position, got nil")
	}
	if pos.Index != 1 || pos.Total != 3 {
		t.Errorf("index/total = %d/%d, want 1/3", pos.Index, pos.Total)
	}
	if pos.Label != "Part 2 of 3" {
		t.Errorf("label = %q, want %q", pos.Label, "Part 2 of 3")
	}
	if pos.Prev == nil || pos.Prev.Slug != "part-one" {
		t.Errorf("prev = %+v, want part-one", pos.Prev)
	}
	if pos.Next == nil || pos.Next.Slug != "part-three" {
		t.Errorf("next = %+v, want part-three", pos.Next)
	}
}

func TestSequenceEdges(t *testing.T) {
	members := []models.PostModel{
		member("Part One", "part-one"),
		member("Part Two", "part-two"),
	}

	first := Sequence(members, "part-one")
	if first == nil || first.Prev != nil {
		t.Errorf("first member should have no prev: %+v", first)
	}
	if first.Next == nil || first.Next.Slug != "part-two" {
		t.Errorf("first member next = %+v, want part-two", first.Next)
	}

	last := Sequence(members, "part-two")
	if last == nil || last.Next != nil {
		t.Errorf("last member should have no next: %+v", last)
	}
	if last.Prev == nil || last.Prev.Slug != "part-one" {
		t.Errorf("last member prev = %+v, want part-one", last.Prev)
	}
}

func TestSequenceSingleMember(t *testing.T) {
	pos := Sequence([]models.PostModel{member("Solo", "solo")}, "solo")
	if pos == nil {
		t.Fatal("expected a position, got nil")
	}
	if pos.Prev != nil || pos.Next != nil {
		t.Errorf("single member should have no neighbors: %+v", pos)
	}
	if pos.Label != "Part 1 of 1" {
		t.Errorf("label = %q, want %q", pos.Label, "Part 1 of 1")
	}
}

func TestSequenceUnknownSlug(t *testing.T) {
	members := []models.PostModel{member("Part One", "part-one")}
	if pos := Sequence(members, "missing"); pos != nil {
		t.Errorf("unknown slug should yield nil, got %+v", pos)
	}
	if pos := Sequence(nil, "anything"); pos != nil {
		t.Errorf("empty members should yield nil, got %+v", pos)
	}
}
