package queries

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ChannelSubscribers resolves a channel with the profiles of everyone
// subscribed to it, the subscriber count, and whether the viewer is
// among them.
func ChannelSubscribers(channelID, viewer primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": channelID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "subscriptions",
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "subscribers",
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$lookup", Value: bson.M{
					"from":         "users",
					"localField":   "subscriber",
					"foreignField": "_id",
					"as":           "subscriberInfo",
				}}},
				bson.D{{Key: "$addFields", Value: bson.M{
					"subscriberInfo": bson.M{"$first": "$subscriberInfo"},
				}}},
			},
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"subscribersCount": bson.M{"$size": "$subscribers"},
			"isSubscribed": bson.M{
				"$in": bson.A{viewer, "$subscribers.subscriber"},
			},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id": 0,
			"subscribers": bson.M{
				"subscriber":     1,
				"createdAt":      1,
				"subscriberInfo": ownerProfile,
			},
			"subscribersCount": 1,
			"isSubscribed":     1,
		}}},
	}
}

// SubscribedChannels lists the channels a user subscribes to, each with
// the channel's profile and its most recently published video.
func SubscribedChannels(subscriberID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"subscriber": subscriberID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "channel",
			"foreignField": "_id",
			"as":           "channelInfo",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": "videos",
			"let":  bson.M{"channelId": "$channel"},
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$and": bson.A{
						bson.M{"$eq": bson.A{"$owner", "$$channelId"}},
						bson.M{"$eq": bson.A{"$isPublished", true}},
					}},
				}}},
				bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
				bson.D{{Key: "$limit", Value: 1}},
			},
			"as": "latestVideo",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"channelInfo": bson.M{"$first": "$channelInfo"},
			"latestVideo": bson.M{"$first": "$latestVideo"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"channel":     1,
			"createdAt":   1,
			"channelInfo": ownerProfile,
			"latestVideo": bson.M{
				"title":     1,
				"thumbnail": 1,
				"duration":  1,
				"views":     1,
				"createdAt": 1,
			},
		}}},
	}
}
