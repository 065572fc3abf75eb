package queries

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Page is a slice of an aggregation result plus cursor metadata,
// mirroring the shape clients already consume.
type Page struct {
	Docs        []bson.M `json:"docs"`
	TotalDocs   int64    `json:"totalDocs"`
	Limit       int64    `json:"limit"`
	Page        int64    `json:"page"`
	TotalPages  int64    `json:"totalPages"`
	HasNextPage bool     `json:"hasNextPage"`
	HasPrevPage bool     `json:"hasPrevPage"`
}

type facetResult struct {
	Metadata []struct {
		Total int64 `bson:"total"`
	} `bson:"metadata"`
	Docs []bson.M `bson:"docs"`
}

// Paginate executes pipeline against coll with a $facet stage that
// counts the full result set and slices out the requested page in one
// round trip. A page past the end is an empty page, not an error.
func Paginate(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, opts ListOptions) (*Page, error) {
	faceted := append(pipeline, bson.D{{Key: "$facet", Value: bson.D{
		{Key: "metadata", Value: mongo.Pipeline{
			bson.D{{Key: "$count", Value: "total"}},
		}},
		{Key: "docs", Value: mongo.Pipeline{
			bson.D{{Key: "$skip", Value: opts.Skip()}},
			bson.D{{Key: "$limit", Value: opts.Limit}},
		}},
	}}})

	cursor, err := coll.Aggregate(ctx, faceted)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []facetResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	var total int64
	var docs []bson.M
	if len(results) > 0 {
		docs = results[0].Docs
		if len(results[0].Metadata) > 0 {
			total = results[0].Metadata[0].Total
		}
	}

	return NewPage(docs, total, opts), nil
}

// NewPage computes the cursor metadata for a slice of docs.
func NewPage(docs []bson.M, total int64, opts ListOptions) *Page {
	if docs == nil {
		docs = []bson.M{}
	}

	totalPages := total / opts.Limit
	if total%opts.Limit != 0 {
		totalPages++
	}

	return &Page{
		Docs:        docs,
		TotalDocs:   total,
		Limit:       opts.Limit,
		Page:        opts.Page,
		TotalPages:  totalPages,
		HasNextPage: opts.Page < totalPages,
		HasPrevPage: opts.Page > 1,
	}
}
