package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"playtube/database"
	"playtube/models"
	"playtube/queries"
	"playtube/response"
)

type commentBody struct {
	Content string `json:"content" binding:"required"`
}

// GetVideoComments lists a video's comments, newest first, paginated.
func GetVideoComments(c *gin.Context) {
	videoID, ok := pathID(c, "videoId")
	if !ok {
		response.Fail(c, response.Invalid, "a valid videoId is required")
		return
	}

	opts := queries.ParseListOptions(c.Query("page"), c.Query("limit"), "", "")

	ctx, cancel := dbCtx()
	defer cancel()

	count, err := database.Videos.CountDocuments(ctx, bson.M{"_id": videoID})
	if err != nil {
		log.Printf("GetVideoComments video check error: %v", err)
		response.Fail(c, response.Internal, "failed to fetch comments")
		return
	}
	if count == 0 {
		response.Fail(c, response.NotFound, "no video found by this id")
		return
	}

	page, err := queries.Paginate(ctx, database.Comments, queries.CommentFeed(videoID, viewerID(c)), opts)
	if err != nil {
		log.Printf("GetVideoComments aggregate error: %v", err)
		response.Fail(c, response.Internal, "failed to fetch comments")
		return
	}

	response.OK(c, http.StatusOK, page, "comments fetched successfully")
}

// AddComment creates a comment on a video.
func AddComment(c *gin.Context) {
	owner, ok := actorID(c)
	if !ok {
		response.Fail(c, response.Unauthorized, "an authenticated user is required to comment")
		return
	}

	videoID, ok := pathID(c, "videoId")
	if !ok {
		response.Fail(c, response.Invalid, "a valid videoId is required")
		return
	}

	var body commentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Fail(c, response.Invalid, "content is required", err.Error())
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	count, err := database.Videos.CountDocuments(ctx, bson.M{"_id": videoID})
	if err != nil {
		log.Printf("AddComment video check error: %v", err)
		response.Fail(c, response.Internal, "failed to create comment")
		return
	}
	if count == 0 {
		response.Fail(c, response.NotFound, "no video found by this id")
		return
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		Content:   body.Content,
		Video:     videoID,
		Owner:     owner,
		CreatedAt: time.Now().Unix(),
	}

	if _, err := database.Comments.InsertOne(ctx, comment); err != nil {
		log.Printf("AddComment insert error: %v", err)
		response.Fail(c, response.Internal, "failed to create comment")
		return
	}

	response.OK(c, http.StatusCreated, comment, "comment created successfully")
}

// UpdateComment replaces a comment's content.
func UpdateComment(c *gin.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		response.Fail(c, response.Invalid, "a valid commentId is required")
		return
	}

	var body commentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Fail(c, response.Invalid, "content is required", err.Error())
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	var comment models.Comment
	err := database.Comments.FindOneAndUpdate(ctx,
		bson.M{"_id": commentID},
		bson.M{"$set": bson.M{"content": body.Content}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&comment)
	if err == mongo.ErrNoDocuments {
		response.Fail(c, response.NotFound, "no comment found by this id")
		return
	}
	if err != nil {
		log.Printf("UpdateComment error: %v", err)
		response.Fail(c, response.Internal, "failed to update comment")
		return
	}

	response.OK(c, http.StatusOK, comment, "comment updated successfully")
}

// DeleteComment removes a comment. Likes on it remain; deletion does
// not cascade.
func DeleteComment(c *gin.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		response.Fail(c, response.Invalid, "a valid commentId is required")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Comments.DeleteOne(ctx, bson.M{"_id": commentID})
	if err != nil {
		log.Printf("DeleteComment error: %v", err)
		response.Fail(c, response.Internal, "failed to delete comment")
		return
	}
	if result.DeletedCount == 0 {
		response.Fail(c, response.NotFound, "no comment found by this id")
		return
	}

	response.OK(c, http.StatusOK, gin.H{}, "comment deleted successfully")
}
