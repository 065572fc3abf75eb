package queries

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"playtube/models"
)

// CommentFeed lists a video's comments newest first, each with its like
// count, the commenter's profile, and whether the viewer liked it.
func CommentFeed(videoID, viewer primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"video": videoID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": "likes",
			"let":  bson.M{"commentId": "$_id"},
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$and": bson.A{
						bson.M{"$eq": bson.A{"$target", "$$commentId"}},
						bson.M{"$eq": bson.A{"$targetKind", models.LikeTargetComment}},
					}},
				}}},
			},
			"as": "likes",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"likesCount": bson.M{"$size": "$likes"},
			"owner":      bson.M{"$first": "$owner"},
			"isLiked": bson.M{
				"$in": bson.A{viewer, "$likes.likedBy"},
			},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$project", Value: bson.M{
			"content":    1,
			"createdAt":  1,
			"likesCount": 1,
			"owner":      ownerProfile,
			"isLiked":    1,
		}}},
	}
}
