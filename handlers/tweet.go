package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"playtube/database"
	"playtube/models"
	"playtube/response"
)

type tweetBody struct {
	Content string `json:"content"`
}

// CreateTweet posts a tweet for the authenticated user.
func CreateTweet(c *gin.Context) {
	owner, ok := actorID(c)
	if !ok {
		response.Fail(c, response.Unauthorized, "an authenticated user is required to tweet")
		return
	}

	var body tweetBody
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Content) == "" {
		response.Fail(c, response.Invalid, "tweet content must not be blank")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	tweet := models.Tweet{
		ID:        primitive.NewObjectID(),
		Content:   body.Content,
		Owner:     owner,
		CreatedAt: time.Now().Unix(),
	}

	if _, err := database.Tweets.InsertOne(ctx, tweet); err != nil {
		log.Printf("CreateTweet insert error: %v", err)
		response.Fail(c, response.Internal, "failed to create tweet")
		return
	}

	response.OK(c, http.StatusCreated, tweet, "tweet created successfully")
}

// GetUserTweets lists a user's tweets, newest first.
func GetUserTweets(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		response.Fail(c, response.Invalid, "a valid userId is required")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Tweets.Find(ctx,
		bson.M{"owner": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		log.Printf("GetUserTweets error: %v", err)
		response.Fail(c, response.Internal, "failed to fetch tweets")
		return
	}
	defer cursor.Close(ctx)

	tweets := []models.Tweet{}
	if err := cursor.All(ctx, &tweets); err != nil {
		log.Printf("GetUserTweets decode error: %v", err)
		response.Fail(c, response.Internal, "failed to decode tweets")
		return
	}

	response.OK(c, http.StatusOK, tweets, "tweets fetched successfully")
}

// UpdateTweet replaces a tweet's content.
func UpdateTweet(c *gin.Context) {
	tweetID, ok := pathID(c, "tweetId")
	if !ok {
		response.Fail(c, response.Invalid, "a valid tweetId is required")
		return
	}

	var body tweetBody
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Content) == "" {
		response.Fail(c, response.Invalid, "tweet content must not be blank")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	var tweet models.Tweet
	err := database.Tweets.FindOneAndUpdate(ctx,
		bson.M{"_id": tweetID},
		bson.M{"$set": bson.M{"content": body.Content}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&tweet)
	if err == mongo.ErrNoDocuments {
		response.Fail(c, response.NotFound, "no tweet found by this id")
		return
	}
	if err != nil {
		log.Printf("UpdateTweet error: %v", err)
		response.Fail(c, response.Internal, "failed to update tweet")
		return
	}

	response.OK(c, http.StatusOK, tweet, "tweet updated successfully")
}

// DeleteTweet removes a tweet.
func DeleteTweet(c *gin.Context) {
	tweetID, ok := pathID(c, "tweetId")
	if !ok {
		response.Fail(c, response.Invalid, "a valid tweetId is required")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Tweets.DeleteOne(ctx, bson.M{"_id": tweetID})
	if err != nil {
		log.Printf("DeleteTweet error: %v", err)
		response.Fail(c, response.Internal, "failed to delete tweet")
		return
	}
	if result.DeletedCount == 0 {
		response.Fail(c, response.NotFound, "no tweet found by this id")
		return
	}

	response.OK(c, http.StatusOK, gin.H{}, "tweet deleted successfully")
}
