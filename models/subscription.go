package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Subscription is an edge from a subscriber to a channel (a user acting
// as a channel). One edge per (subscriber, channel) pair.
type Subscription struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Subscriber primitive.ObjectID `bson:"subscriber" json:"subscriber"`
	Channel    primitive.ObjectID `bson:"channel" json:"channel"`
	CreatedAt  int64              `bson:"createdAt" json:"createdAt"`
}
