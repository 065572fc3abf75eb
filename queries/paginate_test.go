package queries

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestNewPage(t *testing.T) {
	opts := func(page, limit int64) ListOptions {
		return ListOptions{Page: page, Limit: limit}
	}

	t.Run("partial last page rounds total pages up", func(t *testing.T) {
		p := NewPage(make([]bson.M, 10), 25, opts(1, 10))
		if p.TotalPages != 3 {
			t.Errorf("got totalPages=%d, want 3", p.TotalPages)
		}
		if !p.HasNextPage || p.HasPrevPage {
			t.Errorf("page 1 of 3: got next=%v prev=%v", p.HasNextPage, p.HasPrevPage)
		}
	})

	t.Run("exact multiple of limit", func(t *testing.T) {
		p := NewPage(make([]bson.M, 10), 30, opts(3, 10))
		if p.TotalPages != 3 {
			t.Errorf("got totalPages=%d, want 3", p.TotalPages)
		}
		if p.HasNextPage || !p.HasPrevPage {
			t.Errorf("last page: got next=%v prev=%v", p.HasNextPage, p.HasPrevPage)
		}
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		p := NewPage(nil, 5, opts(99, 10))
		if len(p.Docs) != 0 {
			t.Errorf("got %d docs, want 0", len(p.Docs))
		}
		if p.Docs == nil {
			t.Error("docs should serialize as an empty array, not null")
		}
		if p.HasNextPage {
			t.Error("no next page past the end")
		}
	})

	t.Run("empty result set", func(t *testing.T) {
		p := NewPage(nil, 0, opts(1, 10))
		if p.TotalDocs != 0 || p.TotalPages != 0 {
			t.Errorf("got totalDocs=%d totalPages=%d, want zeros", p.TotalDocs, p.TotalPages)
		}
		if p.HasNextPage || p.HasPrevPage {
			t.Error("empty set has no neighboring pages")
		}
	})

	t.Run("metadata echoes the request", func(t *testing.T) {
		p := NewPage(make([]bson.M, 2), 2, opts(1, 50))
		if p.Page != 1 || p.Limit != 50 {
			t.Errorf("got page=%d limit=%d, want 1 and 50", p.Page, p.Limit)
		}
	})
}
