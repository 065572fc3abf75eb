package queries

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"playtube/models"
)

// ownerProfile projects the whitelisted owner fields a joined user
// document may expose.
var ownerProfile = bson.M{
	"username": 1,
	"fullName": 1,
	"avatar":   1,
}

// VideoFeed lists published videos, optionally narrowed to one owner
// and/or a full-text search over title+description. The text index is a
// deployment precondition, not checked at runtime.
func VideoFeed(search string, owner primitive.ObjectID, opts ListOptions) mongo.Pipeline {
	match := bson.M{"isPublished": true}
	if !owner.IsZero() {
		match["owner"] = owner
	}
	if search != "" {
		match["$text"] = bson.M{"$search": search}
	}

	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"owner": bson.M{"$first": "$owner"},
		}}},
		bson.D{{Key: "$sort", Value: opts.Sort()}},
		bson.D{{Key: "$project", Value: bson.M{
			"title":       1,
			"description": 1,
			"videoFile":   1,
			"thumbnail":   1,
			"duration":    1,
			"views":       1,
			"createdAt":   1,
			"owner":       ownerProfile,
		}}},
	}
}

// VideoDetail resolves one video with its like count, the viewer's like
// state, and the owner's profile enriched with subscriber count and the
// viewer's subscription state. A zero viewer id is anonymous and every
// membership test comes back false.
func VideoDetail(videoID, viewer primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": videoID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": "likes",
			"let":  bson.M{"videoId": "$_id"},
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$and": bson.A{
						bson.M{"$eq": bson.A{"$target", "$$videoId"}},
						bson.M{"$eq": bson.A{"$targetKind", models.LikeTargetVideo}},
					}},
				}}},
			},
			"as": "likes",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": "users",
			"let":  bson.M{"ownerId": "$owner"},
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$eq": bson.A{"$_id", "$$ownerId"}},
				}}},
				bson.D{{Key: "$lookup", Value: bson.M{
					"from":         "subscriptions",
					"localField":   "_id",
					"foreignField": "channel",
					"as":           "subscribers",
				}}},
				bson.D{{Key: "$addFields", Value: bson.M{
					"subscribersCount": bson.M{"$size": "$subscribers"},
					"isSubscribed": bson.M{
						"$in": bson.A{viewer, "$subscribers.subscriber"},
					},
				}}},
				bson.D{{Key: "$project", Value: bson.M{
					"username":         1,
					"fullName":         1,
					"avatar":           1,
					"subscribersCount": 1,
					"isSubscribed":     1,
				}}},
			},
			"as": "owner",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"likesCount": bson.M{"$size": "$likes"},
			"owner":      bson.M{"$first": "$owner"},
			"isLiked": bson.M{
				"$in": bson.A{viewer, "$likes.likedBy"},
			},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"title":       1,
			"description": 1,
			"videoFile":   1,
			"thumbnail":   1,
			"duration":    1,
			"views":       1,
			"createdAt":   1,
			"owner":       1,
			"likesCount":  1,
			"isLiked":     1,
		}}},
	}
}
