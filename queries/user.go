package queries

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WatchHistory resolves the videos in a user's watch history with each
// video's owner profile attached.
func WatchHistory(userID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": userID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": "videos",
			"let":  bson.M{"history": "$watchHistory"},
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$in": bson.A{"$_id", bson.M{"$ifNull": bson.A{"$$history", bson.A{}}}}},
				}}},
				bson.D{{Key: "$lookup", Value: bson.M{
					"from":         "users",
					"localField":   "owner",
					"foreignField": "_id",
					"as":           "owner",
				}}},
				bson.D{{Key: "$addFields", Value: bson.M{
					"owner": bson.M{"$first": "$owner"},
				}}},
				bson.D{{Key: "$project", Value: bson.M{
					"title":     1,
					"thumbnail": 1,
					"videoFile": 1,
					"duration":  1,
					"views":     1,
					"createdAt": 1,
					"owner":     ownerProfile,
				}}},
			},
			"as": "watchHistory",
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":          0,
			"watchHistory": 1,
		}}},
	}
}
