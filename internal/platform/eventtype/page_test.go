package eventtype

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		totalElements int64
		size          int
		want          int
	}{
		{0, 1, 0},
		{0, 10, 0},
		{1, 1, 1},
		{1, 10, 1},
		{9, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 10, 10},
		{100, 25, 4},
		{9, 25, 1},
		{11, 1, 11},
		{100, 1, 100},
	}

	for _, c := range cases {
		got := TotalPages(c.totalElements, c.size)
		if got != c.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", c.totalElements, c.size, got, c.want)
		}
	}
}

func TestTotalPages_ZeroSize(t *testing.T) {
	if got := TotalPages(100, 0); got != 0 {
		t.Errorf("TotalPages(100, 0) = %d, want 0", got)
	}
	if got := TotalPages(0, 0); got != 0 {
		t.Errorf("TotalPages(0, 0) = %d, want 0", got)
	}
}

func TestNewPage(t *testing.T) {
	req := PageRequest{Page: 2, Size: 10}
	content := []string{"a", "b", "c"}

	page := NewPage(content, req, 23)

	if len(page.Content) != 3 {
		t.Errorf("Expected 3 items, got %d", len(page.Content))
	}
	if page.Metadata.PageNumber != 2 {
		t.Errorf("Expected page number 2, got %d", page.Metadata.PageNumber)
	}
	if page.Metadata.PageSize != 10 {
		t.Errorf("Expected page size 10, got %d", page.Metadata.PageSize)
	}
	if page.Metadata.TotalElements != 23 {
		t.Errorf("Expected 23 total elements, got %d", page.Metadata.TotalElements)
	}
	if page.Metadata.TotalPages != 3 {
		t.Errorf("Expected 3 total pages, got %d", page.Metadata.TotalPages)
	}
}

func TestNewPage_NilContent(t *testing.T) {
	page := NewPage[string](nil, PageRequest{Page: 0, Size: 10}, 0)

	if page.Content == nil {
		t.Error("Expected empty slice, not nil content")
	}
	if len(page.Content) != 0 {
		t.Errorf("Expected empty content, got %d items", len(page.Content))
	}
}

func TestPageRequest_SkipLimit(t *testing.T) {
	req := PageRequest{Page: 3, Size: 25}

	if req.Skip() != 75 {
		t.Errorf("Expected skip 75, got %d", req.Skip())
	}
	if req.Limit() != 25 {
		t.Errorf("Expected limit 25, got %d", req.Limit())
	}
}
