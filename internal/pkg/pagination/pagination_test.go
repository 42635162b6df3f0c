package pagination

import "testing"

func TestClampPage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"normal", "3", 3},
		{"first page", "1", 1},
		{"zero clamps", "0", 1},
		{"negative clamps", "-4", 1},
		{"empty defaults", "", 1},
		{"garbage defaults", "abc", 1},
		{"float defaults", "2.5", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPage(tt.raw); got != tt.want {
				t.Fatalf("ClampPage(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		size  int
		want  int
	}{
		{"no matches no pages", 0, 10, 0},
		{"exact multiple", 20, 10, 2},
		{"remainder adds a page", 25, 10, 3},
		{"single item", 1, 10, 1},
		{"size one", 7, 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.total, tt.size); got != tt.want {
				t.Fatalf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
			}
		})
	}
}

// Page windows must partition the 25-post listing: pages 1..3 populated, page
// 4 past the end.
func TestMetaWindows(t *testing.T) {
	const total = 25
	for page, wantNext := range map[int]bool{1: true, 2: true, 3: false, 4: false} {
		meta := Meta(total, Query{Page: page, Size: PageSize})
		if meta.TotalPage != 3 {
			t.Fatalf("page %d: TotalPage = %d, want 3", page, meta.TotalPage)
		}
		if meta.HasNextPage != wantNext {
			t.Errorf("page %d: HasNextPage = %v, want %v", page, meta.HasNextPage, wantNext)
		}
	}
}
