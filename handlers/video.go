package handlers

import (
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"playtube/database"
	"playtube/models"
	"playtube/queries"
	"playtube/response"
)

// ListVideos serves the public feed: published videos only, optional
// owner filter and full-text search, sorted and paginated.
func ListVideos(c *gin.Context) {
	opts := queries.ParseListOptions(
		c.Query("page"),
		c.Query("limit"),
		c.Query("sortBy"),
		c.Query("sortType"),
	)

	// An unparseable userId is ignored rather than rejected; the feed
	// just stays unfiltered.
	owner, _ := primitive.ObjectIDFromHex(c.Query("userId"))

	ctx, cancel := dbCtx()
	defer cancel()

	page, err := queries.Paginate(ctx, database.Videos, queries.VideoFeed(c.Query("query"), owner, opts), opts)
	if err != nil {
		log.Printf("ListVideos aggregate error: %v", err)
		response.Fail(c, response.Internal, "failed to fetch videos")
		return
	}

	response.OK(c, http.StatusOK, page, "videos fetched successfully")
}

// PublishVideo uploads the video file and thumbnail to the asset store
// and creates the video document. The two uploads are independent and
// run concurrently.
func PublishVideo(c *gin.Context) {
	owner, ok := actorID(c)
	if !ok {
		response.Fail(c, response.Unauthorized, "an authenticated user is required to publish")
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	if title == "" || description == "" {
		response.Fail(c, response.Invalid, "title and description are both required")
		return
	}

	videoFile, _, err := c.Request.FormFile("videoFile")
	if err != nil {
		response.Fail(c, response.Invalid, "video file is required")
		return
	}
	defer videoFile.Close()

	thumbFile, _, err := c.Request.FormFile("thumbnail")
	if err != nil {
		response.Fail(c, response.Invalid, "thumbnail is required")
		return
	}
	defer thumbFile.Close()

	ctx, cancel := dbCtx()
	defer cancel()

	id := primitive.NewObjectID()

	var videoAsset, thumbAsset Asset
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		videoAsset, err = assetStore.Upload(gctx, videoFile, "playtube/videos", id.Hex())
		return err
	})
	g.Go(func() error {
		var err error
		thumbAsset, err = assetStore.Upload(gctx, thumbFile, "playtube/thumbnails", id.Hex())
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("PublishVideo upload error: %v", err)
		response.Fail(c, response.Internal, "failed to upload assets")
		return
	}

	duration := videoAsset.Duration
	if duration == 0 {
		// Asset backends that do not report media duration leave it to
		// the caller.
		duration, _ = strconv.ParseFloat(c.PostForm("duration"), 64)
	}

	video := models.Video{
		ID:          id,
		Title:       title,
		Description: description,
		VideoFile:   videoAsset.URL,
		Thumbnail:   thumbAsset.URL,
		Duration:    duration,
		IsPublished: true,
		Owner:       owner,
		CreatedAt:   time.Now().Unix(),
	}

	if _, err := database.Videos.InsertOne(ctx, video); err != nil {
		log.Printf("PublishVideo insert error: %v", err)
		response.Fail(c, response.Internal, "failed to publish video")
		return
	}

	response.OK(c, http.StatusCreated, video, "video published successfully")
}

// GetVideoByID returns the detail view of one video. On success the
// view counter is incremented and the video is added to the viewer's
// watch history; both are best-effort and never fail the read.
func GetVideoByID(c *gin.Context) {
	videoID, ok := pathID(c, "videoId")
	if !ok {
		response.Fail(c, response.Invalid, "a valid videoId is required")
		return
	}

	viewer := viewerID(c)

	ctx, cancel := dbCtx()
	defer cancel()

	cursor, err := database.Videos.Aggregate(ctx, queries.VideoDetail(videoID, viewer))
	if err != nil {
		log.Printf("GetVideoByID aggregate error: %v", err)
		response.Fail(c, response.Internal, "failed to fetch video")
		return
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		log.Printf("GetVideoByID decode error: %v", err)
		response.Fail(c, response.Internal, "failed to decode video")
		return
	}
	if len(docs) == 0 {
		response.Fail(c, response.NotFound, "no video found by this id")
		return
	}

	recordView(videoID, viewer)

	response.OK(c, http.StatusOK, docs[0], "video fetched successfully")
}

// recordView bumps the view counter and adds the video to the viewer's
// watch history as a set member. Failures are logged and dropped; the
// read that triggered them has already succeeded.
func recordView(videoID, viewer primitive.ObjectID) {
	ctx, cancel := dbCtx()
	defer cancel()

	if _, err := database.Videos.UpdateOne(ctx,
		bson.M{"_id": videoID},
		bson.M{"$inc": bson.M{"views": 1}},
	); err != nil {
		log.Printf("recordView: view increment failed for %s: %v", videoID.Hex(), err)
	}

	if viewer.IsZero() {
		return
	}
	if _, err := database.Users.UpdateOne(ctx,
		bson.M{"_id": viewer},
		bson.M{"$addToSet": bson.M{"watchHistory": videoID}},
	); err != nil {
		log.Printf("recordView: watch history update failed for %s: %v", viewer.Hex(), err)
	}
}

// UpdateVideo changes title, description and/or thumbnail.
func UpdateVideo(c *gin.Context) {
	videoID, ok := pathID(c, "videoId")
	if !ok {
		response.Fail(c, response.Invalid, "a valid videoId is required")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	set := bson.M{}
	if title := c.PostForm("title"); title != "" {
		set["title"] = title
	}
	if description := c.PostForm("description"); description != "" {
		set["description"] = description
	}

	if thumbFile, _, err := c.Request.FormFile("thumbnail"); err == nil {
		asset, uploadErr := uploadThumbnail(c, thumbFile, videoID)
		if uploadErr != nil {
			return
		}
		set["thumbnail"] = asset.URL
	}

	if len(set) == 0 {
		response.Fail(c, response.Invalid, "nothing to update")
		return
	}

	var video models.Video
	err := database.Videos.FindOneAndUpdate(ctx,
		bson.M{"_id": videoID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&video)
	if err == mongo.ErrNoDocuments {
		response.Fail(c, response.NotFound, "no video found by this id")
		return
	}
	if err != nil {
		log.Printf("UpdateVideo error: %v", err)
		response.Fail(c, response.Internal, "failed to update video details")
		return
	}

	response.OK(c, http.StatusOK, video, "video details updated successfully")
}

func uploadThumbnail(c *gin.Context, file multipart.File, videoID primitive.ObjectID) (Asset, error) {
	defer file.Close()

	ctx, cancel := dbCtx()
	defer cancel()

	asset, err := assetStore.Upload(ctx, file, "playtube/thumbnails", videoID.Hex())
	if err != nil {
		log.Printf("thumbnail upload error: %v", err)
		response.Fail(c, response.Internal, "failed to upload thumbnail")
		return Asset{}, err
	}
	return asset, nil
}

// DeleteVideo removes the video document. Comments and likes pointing
// at it are intentionally left in place: deletion does not cascade.
func DeleteVideo(c *gin.Context) {
	videoID, ok := pathID(c, "videoId")
	if !ok {
		response.Fail(c, response.Invalid, "a valid videoId is required")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	result, err := database.Videos.DeleteOne(ctx, bson.M{"_id": videoID})
	if err != nil {
		log.Printf("DeleteVideo error: %v", err)
		response.Fail(c, response.Internal, "failed to delete video")
		return
	}
	if result.DeletedCount == 0 {
		response.Fail(c, response.NotFound, "no video found by this id")
		return
	}

	response.OK(c, http.StatusOK, gin.H{}, "video deleted successfully")
}

// TogglePublishStatus flips isPublished, gating the video's visibility
// in the public feed.
func TogglePublishStatus(c *gin.Context) {
	videoID, ok := pathID(c, "videoId")
	if !ok {
		response.Fail(c, response.Invalid, "a valid videoId is required")
		return
	}

	ctx, cancel := dbCtx()
	defer cancel()

	// Pipeline update so the flip is a single store operation.
	var video models.Video
	err := database.Videos.FindOneAndUpdate(ctx,
		bson.M{"_id": videoID},
		mongo.Pipeline{bson.D{{Key: "$set", Value: bson.M{
			"isPublished": bson.M{"$not": "$isPublished"},
		}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&video)
	if err == mongo.ErrNoDocuments {
		response.Fail(c, response.NotFound, "no video found by this id")
		return
	}
	if err != nil {
		log.Printf("TogglePublishStatus error: %v", err)
		response.Fail(c, response.Internal, "failed to update publish status")
		return
	}

	response.OK(c, http.StatusOK, video, "video publish status updated successfully")
}
