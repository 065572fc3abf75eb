package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// LikeTarget tags what kind of document a like points at. Exactly one
// target per like; the (likedBy, targetKind, target) triple is unique.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

type Like struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LikedBy    primitive.ObjectID `bson:"likedBy" json:"likedBy"`
	TargetKind LikeTarget         `bson:"targetKind" json:"targetKind"`
	Target     primitive.ObjectID `bson:"target" json:"target"`
	CreatedAt  int64              `bson:"createdAt" json:"createdAt"`
}
