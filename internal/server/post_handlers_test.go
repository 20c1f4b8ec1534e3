package server

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"linkup/internal/models"

	"gorm.io/gorm"
)

func createPost(t *testing.T, db *gorm.DB, userID uint, caption string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{Caption: caption, UserID: userID, CreatedAt: createdAt}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post %q: %v", caption, err)
	}
	return post
}

func TestFeedShowsOwnAndFollowedPosts(t *testing.T) {
	srv, app, db := setupTestServer(t)

	alice := createVerifiedUser(t, db, "alice")
	bob := createVerifiedUser(t, db, "bob")
	carol := createVerifiedUser(t, db, "carol")
	token := tokenFor(t, srv, alice)

	base := time.Now().Add(-time.Hour)
	createPost(t, db, alice.ID, "mine", base)
	createPost(t, db, bob.ID, "from bob", base.Add(10*time.Minute))
	createPost(t, db, carol.ID, "from carol", base.Add(20*time.Minute))

	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", bob.ID), token, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("follow: expected 201, got %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodGet, "/api/posts/feed", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("feed: expected 200, got %d (%v)", resp.StatusCode, body)
	}

	posts := body["posts"].([]any)
	if len(posts) != 2 {
		t.Fatalf("expected own + bob's posts, got %d", len(posts))
	}
	// Newest first.
	if posts[0].(map[string]any)["caption"] != "from bob" {
		t.Fatalf("expected bob's newer post first, got %v", posts[0])
	}
	if posts[1].(map[string]any)["caption"] != "mine" {
		t.Fatalf("expected own post second, got %v", posts[1])
	}
	for _, p := range posts {
		if p.(map[string]any)["author"].(map[string]any)["username"] == "carol" {
			t.Fatal("feed leaked a post from an unfollowed author")
		}
	}
}

func TestLikeToggleSemantics(t *testing.T) {
	srv, app, db := setupTestServer(t)

	alice := createVerifiedUser(t, db, "alice")
	bob := createVerifiedUser(t, db, "bob")
	post := createPost(t, db, bob.ID, "hello", time.Now())

	aliceToken := tokenFor(t, srv, alice)
	bobToken := tokenFor(t, srv, bob)
	likePath := fmt.Sprintf("/api/posts/%d/like", post.ID)

	resp, body := doJSON(t, app, http.MethodPost, likePath, aliceToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("like: expected 200, got %d (%v)", resp.StatusCode, body)
	}
	if body["liked"] != true || body["likes_count"] != float64(1) {
		t.Fatalf("expected liked view, got %v", body)
	}

	// Re-liking is rejected, count unchanged.
	resp, body = doJSON(t, app, http.MethodPost, likePath, aliceToken, nil)
	if resp.StatusCode != http.StatusBadRequest || body["code"] != models.CodeAlreadyLiked {
		t.Fatalf("expected 400 ALREADY_LIKED, got %d %v", resp.StatusCode, body)
	}

	// The liked flag is per viewer.
	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), bobToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get post: expected 200, got %d", resp.StatusCode)
	}
	if body["liked"] != false {
		t.Fatal("bob's view must not inherit alice's liked flag")
	}
	if body["likes_count"] != float64(1) {
		t.Fatalf("likes_count is viewer-independent, got %v", body["likes_count"])
	}

	resp, body = doJSON(t, app, http.MethodDelete, likePath, aliceToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unlike: expected 200, got %d", resp.StatusCode)
	}
	if body["liked"] != false || body["likes_count"] != float64(0) {
		t.Fatalf("expected unliked view, got %v", body)
	}

	resp, body = doJSON(t, app, http.MethodDelete, likePath, aliceToken, nil)
	if resp.StatusCode != http.StatusBadRequest || body["code"] != models.CodeNotLiked {
		t.Fatalf("expected 400 NOT_LIKED, got %d %v", resp.StatusCode, body)
	}
}

func TestCommentFlow(t *testing.T) {
	srv, app, db := setupTestServer(t)

	alice := createVerifiedUser(t, db, "alice")
	bob := createVerifiedUser(t, db, "bob")
	post := createPost(t, db, bob.ID, "hello", time.Now())
	token := tokenFor(t, srv, alice)

	commentsPath := fmt.Sprintf("/api/posts/%d/comments", post.ID)

	resp, body := doJSON(t, app, http.MethodPost, commentsPath, token, map[string]any{
		"content": "nice shot",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("comment: expected 201, got %d (%v)", resp.StatusCode, body)
	}
	if body["author"].(map[string]any)["username"] != "alice" {
		t.Fatalf("comment must carry its author, got %v", body)
	}

	resp, body = doJSON(t, app, http.MethodPost, commentsPath, token, map[string]any{
		"content": "   ",
	})
	if resp.StatusCode != http.StatusBadRequest || body["code"] != models.CodeValidation {
		t.Fatalf("empty comment: expected 400, got %d %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, app, http.MethodGet, commentsPath, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list comments: expected 200, got %d", resp.StatusCode)
	}
	if body["count"] != float64(1) {
		t.Fatalf("expected one comment, got %v", body["count"])
	}

	// Comment count shows up on the post view.
	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get post: expected 200, got %d", resp.StatusCode)
	}
	if body["comments_count"] != float64(1) {
		t.Fatalf("expected comments_count 1, got %v", body["comments_count"])
	}
}

func TestUpdateAndDeletePostOwnership(t *testing.T) {
	srv, app, db := setupTestServer(t)

	alice := createVerifiedUser(t, db, "alice")
	bob := createVerifiedUser(t, db, "bob")
	post := createPost(t, db, alice.ID, "original", time.Now())

	postPath := fmt.Sprintf("/api/posts/%d", post.ID)
	bobToken := tokenFor(t, srv, bob)
	aliceToken := tokenFor(t, srv, alice)

	resp, body := doJSON(t, app, http.MethodPut, postPath, bobToken, map[string]any{
		"caption": "hijacked",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("foreign edit: expected 401, got %d (%v)", resp.StatusCode, body)
	}

	resp, body = doJSON(t, app, http.MethodPut, postPath, aliceToken, map[string]any{
		"caption": "edited",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("edit: expected 200, got %d (%v)", resp.StatusCode, body)
	}
	if body["caption"] != "edited" {
		t.Fatalf("expected edited caption, got %v", body["caption"])
	}

	resp, _ = doJSON(t, app, http.MethodDelete, postPath, bobToken, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("foreign delete: expected 401, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodDelete, postPath, aliceToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodGet, postPath, aliceToken, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("deleted post: expected 404, got %d", resp.StatusCode)
	}
}

func TestCreatePostWithoutContent(t *testing.T) {
	srv, app, db := setupTestServer(t)

	alice := createVerifiedUser(t, db, "alice")
	token := tokenFor(t, srv, alice)

	resp, body := doJSON(t, app, http.MethodPost, "/api/posts/", token, map[string]any{})
	if resp.StatusCode != http.StatusBadRequest || body["code"] != models.CodeValidation {
		t.Fatalf("expected 400 VALIDATION_ERROR, got %d %v", resp.StatusCode, body)
	}
}
