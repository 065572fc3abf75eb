package queries

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestParseListOptions(t *testing.T) {
	t.Run("defaults when everything is absent", func(t *testing.T) {
		opts := ParseListOptions("", "", "", "")
		if opts.Page != 1 || opts.Limit != 10 {
			t.Errorf("got page=%d limit=%d, want 1 and 10", opts.Page, opts.Limit)
		}
		if opts.SortBy != "createdAt" || opts.SortAsc {
			t.Errorf("got sortBy=%q asc=%v, want createdAt descending", opts.SortBy, opts.SortAsc)
		}
	})

	t.Run("parses base-10 page and limit", func(t *testing.T) {
		opts := ParseListOptions("3", "25", "", "")
		if opts.Page != 3 || opts.Limit != 25 {
			t.Errorf("got page=%d limit=%d, want 3 and 25", opts.Page, opts.Limit)
		}
	})

	t.Run("garbage and non-positive values fall back to defaults", func(t *testing.T) {
		for _, tc := range [][2]string{{"abc", "xyz"}, {"0", "-5"}, {"1.5", "1e3"}} {
			opts := ParseListOptions(tc[0], tc[1], "", "")
			if opts.Page != 1 || opts.Limit != 10 {
				t.Errorf("ParseListOptions(%q, %q): got page=%d limit=%d, want defaults", tc[0], tc[1], opts.Page, opts.Limit)
			}
		}
	})

	t.Run("no upper bound on limit", func(t *testing.T) {
		opts := ParseListOptions("1", "100000", "", "")
		if opts.Limit != 100000 {
			t.Errorf("got limit=%d, want 100000", opts.Limit)
		}
	})

	t.Run("only the literal asc sorts ascending", func(t *testing.T) {
		cases := map[string]bool{
			"asc":  true,
			"desc": false,
			"":     false,
			"ASC":  false,
			"up":   false,
		}
		for sortType, want := range cases {
			opts := ParseListOptions("", "", "views", sortType)
			if opts.SortAsc != want {
				t.Errorf("sortType=%q: got asc=%v, want %v", sortType, opts.SortAsc, want)
			}
		}
	})
}

func TestListOptionsSort(t *testing.T) {
	t.Run("descending by default", func(t *testing.T) {
		sort := ParseListOptions("", "", "", "").Sort()
		want := bson.D{{Key: "createdAt", Value: -1}}
		if len(sort) != 1 || sort[0].Key != want[0].Key || sort[0].Value != want[0].Value {
			t.Errorf("got %v, want %v", sort, want)
		}
	})

	t.Run("caller field ascending", func(t *testing.T) {
		sort := ParseListOptions("", "", "views", "asc").Sort()
		if sort[0].Key != "views" || sort[0].Value != 1 {
			t.Errorf("got %v, want views ascending", sort)
		}
	})
}

func TestListOptionsSkip(t *testing.T) {
	cases := []struct {
		page, limit, want int64
	}{
		{1, 10, 0},
		{2, 10, 10},
		{5, 3, 12},
	}
	for _, tc := range cases {
		opts := ListOptions{Page: tc.page, Limit: tc.limit}
		if got := opts.Skip(); got != tc.want {
			t.Errorf("page=%d limit=%d: got skip=%d, want %d", tc.page, tc.limit, got, tc.want)
		}
	}
}
