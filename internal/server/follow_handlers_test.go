package server

import (
	"fmt"
	"net/http"
	"testing"

	"linkup/internal/models"
)

func TestFollowUnfollowFlow(t *testing.T) {
	srv, app, db := setupTestServer(t)

	alice := createVerifiedUser(t, db, "alice")
	bob := createVerifiedUser(t, db, "bob")
	aliceToken := tokenFor(t, srv, alice)

	followPath := fmt.Sprintf("/api/users/%d/follow", bob.ID)

	resp, body := doJSON(t, app, http.MethodPost, followPath, aliceToken, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("follow: expected 201, got %d (%v)", resp.StatusCode, body)
	}

	// Following again is a conflict, not a silent success.
	resp, body = doJSON(t, app, http.MethodPost, followPath, aliceToken, nil)
	if resp.StatusCode != http.StatusConflict || body["code"] != models.CodeAlreadyExists {
		t.Fatalf("duplicate follow: expected 409 ALREADY_EXISTS, got %d %v", resp.StatusCode, body)
	}

	// Both projections reflect the single edge.
	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d/followers", bob.ID), aliceToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("followers: expected 200, got %d", resp.StatusCode)
	}
	followers := body["followers"].([]any)
	if len(followers) != 1 || followers[0].(map[string]any)["username"] != "alice" {
		t.Fatalf("expected alice in bob's followers, got %v", followers)
	}

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d/following", alice.ID), aliceToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("following: expected 200, got %d", resp.StatusCode)
	}
	following := body["following"].([]any)
	if len(following) != 1 || following[0].(map[string]any)["username"] != "bob" {
		t.Fatalf("expected bob in alice's following, got %v", following)
	}

	// Bob's profile seen by alice carries the relationship flags.
	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", bob.ID), aliceToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d", resp.StatusCode)
	}
	if body["is_following"] != true {
		t.Fatalf("expected is_following true, got %v", body["is_following"])
	}
	if body["email"] != nil && body["email"] != "" {
		t.Fatalf("foreign profile must omit email, got %v", body["email"])
	}

	resp, body = doJSON(t, app, http.MethodDelete, followPath, aliceToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unfollow: expected 200, got %d (%v)", resp.StatusCode, body)
	}

	resp, body = doJSON(t, app, http.MethodDelete, followPath, aliceToken, nil)
	if resp.StatusCode != http.StatusBadRequest || body["code"] != models.CodeEdgeNotFound {
		t.Fatalf("repeat unfollow: expected 400 EDGE_NOT_FOUND, got %d %v", resp.StatusCode, body)
	}
}

func TestFollowSelfRejected(t *testing.T) {
	srv, app, db := setupTestServer(t)

	alice := createVerifiedUser(t, db, "alice")
	token := tokenFor(t, srv, alice)

	resp, body := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", alice.ID), token, nil)
	if resp.StatusCode != http.StatusBadRequest || body["code"] != models.CodeSelfReference {
		t.Fatalf("expected 400 SELF_REFERENCE, got %d %v", resp.StatusCode, body)
	}
}

func TestFollowMissingUser(t *testing.T) {
	srv, app, db := setupTestServer(t)

	alice := createVerifiedUser(t, db, "alice")
	token := tokenFor(t, srv, alice)

	resp, body := doJSON(t, app, http.MethodPost, "/api/users/9999/follow", token, nil)
	if resp.StatusCode != http.StatusNotFound || body["code"] != models.CodeNotFound {
		t.Fatalf("expected 404 NOT_FOUND, got %d %v", resp.StatusCode, body)
	}
}

func TestSuggestionsExcludeFollowed(t *testing.T) {
	srv, app, db := setupTestServer(t)

	alice := createVerifiedUser(t, db, "alice")
	bob := createVerifiedUser(t, db, "bob")
	createVerifiedUser(t, db, "carol")
	token := tokenFor(t, srv, alice)

	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", bob.ID), token, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("follow: expected 201, got %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodGet, "/api/users/suggestions", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("suggestions: expected 200, got %d", resp.StatusCode)
	}
	suggestions := body["suggestions"].([]any)
	if len(suggestions) != 1 {
		t.Fatalf("expected only carol suggested, got %v", suggestions)
	}
	if suggestions[0].(map[string]any)["username"] != "carol" {
		t.Fatalf("expected carol, got %v", suggestions[0])
	}
}
