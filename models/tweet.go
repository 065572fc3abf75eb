package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Tweet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Content   string             `bson:"content" json:"content"`
	Owner     primitive.ObjectID `bson:"owner" json:"owner"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}
