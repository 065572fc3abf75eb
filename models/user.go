package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Avatar       string             `bson:"avatar" json:"avatar"`
	CoverImage   string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	PasswordHash *string            `bson:"passwordHash,omitempty" json:"-"`

	// Video ids the user has opened, most recently added last.
	WatchHistory []primitive.ObjectID `bson:"watchHistory,omitempty" json:"watchHistory,omitempty"`

	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
}

// Profile is the whitelisted subset of User that joins are allowed to
// expose. Full user documents never leave the aggregation layer.
type Profile struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	FullName string             `bson:"fullName" json:"fullName"`
	Avatar   string             `bson:"avatar" json:"avatar"`
}
