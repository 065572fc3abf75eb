package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestKindStatus(t *testing.T) {
	cases := map[Kind]int{
		Invalid:      http.StatusBadRequest,
		Unauthorized: http.StatusUnauthorized,
		NotFound:     http.StatusNotFound,
		Internal:     http.StatusInternalServerError,
	}
	for kind, want := range cases {
		if got := kind.Status(); got != want {
			t.Errorf("kind %d: got %d, want %d", kind, got, want)
		}
	}
}

func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, http.StatusCreated, gin.H{"id": "abc"}, "created")

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201", w.Code)
	}

	var body Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if !body.Success || body.StatusCode != http.StatusCreated || body.Message != "created" {
		t.Errorf("unexpected envelope: %+v", body)
	}
	if body.Data == nil {
		t.Error("data missing")
	}
}

func TestFail(t *testing.T) {
	t.Run("maps kind to status and never returns null errors", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Fail(c, NotFound, "no video found by this id")

		if w.Code != http.StatusNotFound {
			t.Fatalf("got status %d, want 404", w.Code)
		}

		var body ErrorBody
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Success {
			t.Error("failures must carry success=false")
		}
		if body.Errors == nil {
			t.Error("errors must serialize as an empty array, not null")
		}
	})

	t.Run("carries detail strings in order", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Fail(c, Invalid, "bad request", "first", "second")

		var body ErrorBody
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Errors) != 2 || body.Errors[0] != "first" || body.Errors[1] != "second" {
			t.Errorf("got errors %v, want [first second]", body.Errors)
		}
	})

	t.Run("aborts the handler chain", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Fail(c, Internal, "boom")

		if !c.IsAborted() {
			t.Error("Fail must abort the context")
		}
	})
}
