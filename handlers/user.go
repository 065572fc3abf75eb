package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"playtube/database"
	"playtube/models"
	"playtube/queries"
	"playtube/response"
)

// GetCurrentUser returns the authenticated user's own document.
func GetCurrentUser(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		response.Fail(c, response.Unauthorized, "an authenticated user is required")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		response.Fail(c, response.NotFound, "user not found")
		return
	}
	if err != nil {
		log.Printf("GetCurrentUser error: %v", err)
		response.Fail(c, response.Internal, "failed to fetch user")
		return
	}

	user.PasswordHash = nil
	response.OK(c, http.StatusOK, user, "user fetched successfully")
}

// GetWatchHistory returns the videos the authenticated user has opened,
// each with its owner's profile.
func GetWatchHistory(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		response.Fail(c, response.Unauthorized, "an authenticated user is required")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Users.Aggregate(ctx, queries.WatchHistory(userID))
	if err != nil {
		log.Printf("GetWatchHistory aggregate error: %v", err)
		response.Fail(c, response.Internal, "failed to fetch watch history")
		return
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		log.Printf("GetWatchHistory decode error: %v", err)
		response.Fail(c, response.Internal, "failed to decode watch history")
		return
	}
	if len(docs) == 0 {
		response.Fail(c, response.NotFound, "user not found")
		return
	}

	response.OK(c, http.StatusOK, docs[0]["watchHistory"], "watch history fetched successfully")
}
