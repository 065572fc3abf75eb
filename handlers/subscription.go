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

// ToggleSubscription flips the authenticated user's subscription to a
// channel.
func ToggleSubscription(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		response.Fail(c, response.Unauthorized, "an authenticated user is required to subscribe")
		return
	}

	channelID, ok := pathID(c, "channelId")
	if !ok {
		response.Fail(c, response.Invalid, "a valid channelId is required")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	state, err := toggle.Toggle(ctx,
		toggle.CollectionStore{Coll: database.Subscriptions},
		bson.M{"subscriber": actor, "channel": channelID},
		models.Subscription{
			ID:         primitive.NewObjectID(),
			Subscriber: actor,
			Channel:    channelID,
			CreatedAt:  time.Now().Unix(),
		},
	)
	if err != nil {
		log.Printf("ToggleSubscription error: %v", err)
		response.Fail(c, response.Internal, "failed to toggle subscription")
		return
	}

	if state == toggle.Added {
		response.OK(c, http.StatusOK, gin.H{"subscribed": true}, "subscribed successfully")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"subscribed": false}, "unsubscribed successfully")
}

// GetChannelSubscribers returns the subscriber list of a channel.
func GetChannelSubscribers(c *gin.Context) {
	channelID, ok := pathID(c, "channelId")
	if !ok {
		response.Fail(c, response.Invalid, "a valid channelId is required")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Users.Aggregate(ctx, queries.ChannelSubscribers(channelID, viewerID(c)))
	if err != nil {
		log.Printf("GetChannelSubscribers aggregate error: %v", err)
		response.Fail(c, response.Internal, "failed to fetch subscribers")
		return
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		log.Printf("GetChannelSubscribers decode error: %v", err)
		response.Fail(c, response.Internal, "failed to decode subscribers")
		return
	}
	if len(docs) == 0 {
		response.Fail(c, response.NotFound, "no channel found by this id")
		return
	}

	response.OK(c, http.StatusOK, docs[0], "subscribers fetched successfully")
}

// GetSubscribedChannels returns the channels a user subscribes to, each
// with its latest published video.
func GetSubscribedChannels(c *gin.Context) {
	subscriberID, ok := pathID(c, "subscriberId")
	if !ok {
		response.Fail(c, response.Invalid, "a valid subscriberId is required")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Subscriptions.Aggregate(ctx, queries.SubscribedChannels(subscriberID))
	if err != nil {
		log.Printf("GetSubscribedChannels aggregate error: %v", err)
		response.Fail(c, response.Internal, "failed to fetch channels")
		return
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		log.Printf("GetSubscribedChannels decode error: %v", err)
		response.Fail(c, response.Internal, "failed to decode channels")
		return
	}

	response.OK(c, http.StatusOK, docs, "channels fetched successfully")
}
