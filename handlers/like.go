package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"playtube/database"
	"playtube/models"
	"playtube/queries"
	"playtube/response"
	"playtube/toggle"
)

// ToggleVideoLike flips the authenticated user's like on a video.
func ToggleVideoLike(c *gin.Context) {
	toggleLike(c, "videoId", models.LikeTargetVideo)
}

// ToggleCommentLike flips the authenticated user's like on a comment.
func ToggleCommentLike(c *gin.Context) {
	toggleLike(c, "commentId", models.LikeTargetComment)
}

// ToggleTweetLike flips the authenticated user's like on a tweet.
func ToggleTweetLike(c *gin.Context) {
	toggleLike(c, "tweetId", models.LikeTargetTweet)
}

func toggleLike(c *gin.Context, param string, kind models.LikeTarget) {
	actor, ok := actorID(c)
	if !ok {
		response.Fail(c, response.Unauthorized, "an authenticated user is required to like")
		return
	}

	target, ok := pathID(c, param)
	if !ok {
		response.Fail(c, response.Invalid, "a valid "+param+" is required")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	state, err := toggle.Toggle(ctx,
		toggle.CollectionStore{Coll: database.Likes},
		bson.M{"likedBy": actor, "targetKind": kind, "target": target},
		models.Like{
			ID:         primitive.NewObjectID(),
			LikedBy:    actor,
			TargetKind: kind,
			Target:     target,
			CreatedAt:  time.Now().Unix(),
		},
	)
	if err != nil {
		log.Printf("toggleLike error: %v", err)
		response.Fail(c, response.Internal, "failed to toggle like")
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"state": state,
		"liked": state == toggle.Added,
	}, string(kind)+" like toggled successfully")
}

// GetLikedVideos lists the videos the authenticated user has liked.
func GetLikedVideos(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		response.Fail(c, response.Unauthorized, "an authenticated user is required")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Likes.Aggregate(ctx, queries.LikedVideos(actor))
	if err != nil {
		log.Printf("GetLikedVideos aggregate error: %v", err)
		response.Fail(c, response.Internal, "failed to fetch liked videos")
		return
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		log.Printf("GetLikedVideos decode error: %v", err)
		response.Fail(c, response.Internal, "failed to decode liked videos")
		return
	}

	response.OK(c, http.StatusOK, docs, "liked videos fetched successfully")
}
