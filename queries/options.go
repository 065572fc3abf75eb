// Package queries builds the aggregation pipelines behind every read
// endpoint: feed filters, profile joins, like/subscription membership
// tests and cursor pagination. Builders are pure; execution happens in
// Paginate or at the call site.
package queries

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ListOptions carries the pagination and sort parameters common to all
// feed-style queries.
type ListOptions struct {
	Page    int64
	Limit   int64
	SortBy  string
	SortAsc bool
}

// ParseListOptions interprets raw query-string values. Page and limit
// are base-10 integers defaulting to 1 and 10; no upper bound on limit
// is enforced. The sort key defaults to createdAt, and only the literal
// sortType "asc" sorts ascending — any other value, including absent,
// sorts descending.
func ParseListOptions(page, limit, sortBy, sortType string) ListOptions {
	opts := ListOptions{
		Page:   defaultPage,
		Limit:  defaultLimit,
		SortBy: "createdAt",
	}

	if n, err := strconv.ParseInt(page, 10, 64); err == nil && n > 0 {
		opts.Page = n
	}
	if n, err := strconv.ParseInt(limit, 10, 64); err == nil && n > 0 {
		opts.Limit = n
	}
	if sortBy != "" {
		opts.SortBy = sortBy
	}
	opts.SortAsc = sortType == "asc"

	return opts
}

// Sort returns the $sort stage document for these options.
func (o ListOptions) Sort() bson.D {
	dir := -1
	if o.SortAsc {
		dir = 1
	}
	return bson.D{{Key: o.SortBy, Value: dir}}
}

// Skip returns the number of documents the requested page starts after.
func (o ListOptions) Skip() int64 {
	return (o.Page - 1) * o.Limit
}
