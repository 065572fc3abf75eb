package queries

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"playtube/models"
)

// stage returns the body of the first pipeline stage with the given
// operator, or nil.
func stage(p mongo.Pipeline, op string) interface{} {
	for _, s := range p {
		if len(s) == 1 && s[0].Key == op {
			return s[0].Value
		}
	}
	return nil
}

func stageCount(p mongo.Pipeline, op string) int {
	n := 0
	for _, s := range p {
		if len(s) == 1 && s[0].Key == op {
			n++
		}
	}
	return n
}

func TestVideoFeed(t *testing.T) {
	opts := ParseListOptions("", "", "", "")

	t.Run("bare feed matches published only", func(t *testing.T) {
		p := VideoFeed("", primitive.NilObjectID, opts)
		match, ok := stage(p, "$match").(bson.M)
		if !ok {
			t.Fatal("no $match stage")
		}
		if match["isPublished"] != true {
			t.Error("feed must filter on isPublished")
		}
		if _, present := match["owner"]; present {
			t.Error("no owner filter requested, none should be applied")
		}
		if _, present := match["$text"]; present {
			t.Error("no search requested, no $text stage expected")
		}
	})

	t.Run("owner filter and text search", func(t *testing.T) {
		owner := primitive.NewObjectID()
		p := VideoFeed("cats", owner, opts)
		match := stage(p, "$match").(bson.M)
		if match["owner"] != owner {
			t.Error("owner filter missing")
		}
		text, ok := match["$text"].(bson.M)
		if !ok || text["$search"] != "cats" {
			t.Errorf("got $text=%v, want search for cats", match["$text"])
		}
	})

	t.Run("sort follows options", func(t *testing.T) {
		p := VideoFeed("", primitive.NilObjectID, ParseListOptions("", "", "views", "asc"))
		sort, ok := stage(p, "$sort").(bson.D)
		if !ok {
			t.Fatal("no $sort stage")
		}
		if sort[0].Key != "views" || sort[0].Value != 1 {
			t.Errorf("got sort %v, want views ascending", sort)
		}
	})

	t.Run("projection whitelists owner profile fields", func(t *testing.T) {
		p := VideoFeed("", primitive.NilObjectID, opts)
		project, ok := stage(p, "$project").(bson.M)
		if !ok {
			t.Fatal("no $project stage")
		}
		owner, ok := project["owner"].(bson.M)
		if !ok {
			t.Fatal("owner projection missing")
		}
		for _, field := range []string{"username", "fullName", "avatar"} {
			if owner[field] != 1 {
				t.Errorf("owner projection missing %s", field)
			}
		}
		if len(owner) != 3 {
			t.Errorf("owner projection leaks fields: %v", owner)
		}
	})
}

func TestVideoDetail(t *testing.T) {
	videoID := primitive.NewObjectID()
	viewer := primitive.NewObjectID()
	p := VideoDetail(videoID, viewer)

	t.Run("matches the requested id", func(t *testing.T) {
		match := stage(p, "$match").(bson.M)
		if match["_id"] != videoID {
			t.Errorf("got match %v, want _id=%s", match, videoID.Hex())
		}
	})

	t.Run("membership test uses the viewer id", func(t *testing.T) {
		fields, ok := stage(p, "$addFields").(bson.M)
		if !ok {
			t.Fatal("no $addFields stage")
		}
		isLiked, ok := fields["isLiked"].(bson.M)
		if !ok {
			t.Fatal("isLiked missing")
		}
		in := isLiked["$in"].(bson.A)
		if in[0] != viewer {
			t.Errorf("isLiked tests %v, want viewer %s", in[0], viewer.Hex())
		}
		if fields["likesCount"] == nil {
			t.Error("likesCount missing")
		}
	})

	t.Run("joins likes and owner", func(t *testing.T) {
		if n := stageCount(p, "$lookup"); n != 2 {
			t.Errorf("got %d lookups, want likes and owner", n)
		}
	})
}

func TestCommentFeed(t *testing.T) {
	videoID := primitive.NewObjectID()
	p := CommentFeed(videoID, primitive.NilObjectID)

	t.Run("scopes to the video", func(t *testing.T) {
		match := stage(p, "$match").(bson.M)
		if match["video"] != videoID {
			t.Errorf("got match %v, want video=%s", match, videoID.Hex())
		}
	})

	t.Run("newest first", func(t *testing.T) {
		sort, ok := stage(p, "$sort").(bson.D)
		if !ok {
			t.Fatal("no $sort stage")
		}
		if sort[0].Key != "createdAt" || sort[0].Value != -1 {
			t.Errorf("got sort %v, want createdAt descending", sort)
		}
	})

	t.Run("projects only the response fields", func(t *testing.T) {
		project := stage(p, "$project").(bson.M)
		for _, field := range []string{"content", "createdAt", "likesCount", "owner", "isLiked"} {
			if _, present := project[field]; !present {
				t.Errorf("projection missing %s", field)
			}
		}
		if _, present := project["video"]; present {
			t.Error("projection must not leak the video reference")
		}
	})
}

func TestSubscribedChannels(t *testing.T) {
	subscriber := primitive.NewObjectID()
	p := SubscribedChannels(subscriber)

	t.Run("matches the subscriber side", func(t *testing.T) {
		match := stage(p, "$match").(bson.M)
		if match["subscriber"] != subscriber {
			t.Errorf("got match %v, want subscriber=%s", match, subscriber.Hex())
		}
	})

	t.Run("latest video is the newest published one", func(t *testing.T) {
		var videosLookup bson.M
		for _, s := range p {
			if s[0].Key != "$lookup" {
				continue
			}
			body := s[0].Value.(bson.M)
			if body["from"] == "videos" {
				videosLookup = body
			}
		}
		if videosLookup == nil {
			t.Fatal("no videos lookup")
		}

		inner := videosLookup["pipeline"].(mongo.Pipeline)
		sort, ok := stage(inner, "$sort").(bson.D)
		if !ok || sort[0].Key != "createdAt" || sort[0].Value != -1 {
			t.Errorf("inner sort %v, want createdAt descending", sort)
		}
		if limit := stage(inner, "$limit"); limit != 1 {
			t.Errorf("inner limit %v, want 1", limit)
		}
	})
}

func TestLikedVideos(t *testing.T) {
	viewer := primitive.NewObjectID()
	p := LikedVideos(viewer)

	match := stage(p, "$match").(bson.M)
	if match["likedBy"] != viewer {
		t.Errorf("got match %v, want likedBy=%s", match, viewer.Hex())
	}
	if match["targetKind"] != models.LikeTargetVideo {
		t.Error("liked-videos feed must only consider video likes")
	}

	sort, ok := stage(p, "$sort").(bson.D)
	if !ok || sort[0].Key != "createdAt" || sort[0].Value != -1 {
		t.Errorf("got sort %v, want createdAt descending", sort)
	}
}
