package queries

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"playtube/models"
)

// LikedVideos lists every video the viewer has liked, newest like
// first, with the video's owner profile attached.
func LikedVideos(viewer primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"likedBy":    viewer,
			"targetKind": models.LikeTargetVideo,
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": "videos",
			"let":  bson.M{"videoId": "$target"},
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$eq": bson.A{"$_id", "$$videoId"}},
				}}},
				bson.D{{Key: "$lookup", Value: bson.M{
					"from":         "users",
					"localField":   "owner",
					"foreignField": "_id",
					"as":           "ownerDetails",
				}}},
				bson.D{{Key: "$unwind", Value: "$ownerDetails"}},
			},
			"as": "likedVideo",
		}}},
		bson.D{{Key: "$unwind", Value: "$likedVideo"}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id": 0,
			"likedVideo": bson.M{
				"_id":          1,
				"videoFile":    1,
				"thumbnail":    1,
				"title":        1,
				"description":  1,
				"duration":     1,
				"views":        1,
				"createdAt":    1,
				"isPublished":  1,
				"ownerDetails": ownerProfile,
			},
		}}},
	}
}
