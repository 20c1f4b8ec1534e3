package service

import (
	"context"
	"strings"
	"testing"

	"linkup/internal/models"
)

func TestSuggestionsExcludeSelfAndFollowed(t *testing.T) {
	userRepo := userRepoWith(1, 2, 3, 4)
	followRepo := noopFollowRepo()
	followRepo.followingIDsFn = func(context.Context, uint) ([]uint, error) {
		return []uint{2}, nil
	}
	svc := NewUserService(userRepo, followRepo, okBlobStore())

	users, err := svc.Suggestions(context.Background(), 1)
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}

	for _, u := range users {
		if u.ID == 1 {
			t.Fatal("suggestions must not include the viewer")
		}
		if u.ID == 2 {
			t.Fatal("suggestions must not include already-followed accounts")
		}
	}
	if len(users) != 2 {
		t.Fatalf("expected users 3 and 4, got %v", users)
	}
}

func TestSuggestionsOnlyVerified(t *testing.T) {
	userRepo := userRepoWith(1, 2)
	userRepo.users[3] = &models.User{ID: 3, Verified: false}
	svc := NewUserService(userRepo, noopFollowRepo(), okBlobStore())

	users, err := svc.Suggestions(context.Background(), 1)
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	for _, u := range users {
		if !u.Verified {
			t.Fatalf("unverified account %d in suggestions", u.ID)
		}
	}
}

func TestUpdateProfileBioTooLong(t *testing.T) {
	svc := NewUserService(userRepoWith(1), noopFollowRepo(), okBlobStore())

	bio := strings.Repeat("x", 501)
	_, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileInput{Bio: &bio})
	assertCode(t, err, models.CodeValidation)
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := userRepoWith(1)
	repo.users[1].Firstname = "Ada"
	repo.users[1].Bio = "old bio"
	svc := NewUserService(repo, noopFollowRepo(), okBlobStore())

	bio := "new bio"
	user, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileInput{Bio: &bio})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if user.Bio != "new bio" {
		t.Fatalf("expected bio updated, got %q", user.Bio)
	}
	if user.Firstname != "Ada" {
		t.Fatalf("untouched field changed: %q", user.Firstname)
	}
}

func TestActivatePrimeTwice(t *testing.T) {
	repo := userRepoWith(1)
	svc := NewUserService(repo, noopFollowRepo(), okBlobStore())

	user, err := svc.ActivatePrime(context.Background(), 1)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if !user.Prime {
		t.Fatal("expected prime set")
	}

	_, err = svc.ActivatePrime(context.Background(), 1)
	assertCode(t, err, models.CodeValidation)
}

func TestProjectorEmailOnlyForSelf(t *testing.T) {
	p := NewProjector(noopFollowRepo())
	user := &models.User{ID: 1, Username: "ada", Email: "ada@example.com"}

	self, err := p.UserView(context.Background(), user, 1)
	if err != nil {
		t.Fatalf("self view: %v", err)
	}
	if self.Email != "ada@example.com" {
		t.Fatal("self view must include email")
	}

	other, err := p.UserView(context.Background(), user, 2)
	if err != nil {
		t.Fatalf("other view: %v", err)
	}
	if other.Email != "" {
		t.Fatal("foreign view must omit email")
	}
}

func TestProjectorFollowRelationship(t *testing.T) {
	repo := noopFollowRepo()
	repo.existsFn = func(_ context.Context, followerID, followeeID uint) (bool, error) {
		// viewer 2 follows user 1, user 1 does not follow back
		return followerID == 2 && followeeID == 1, nil
	}
	p := NewProjector(repo)

	view, err := p.UserView(context.Background(), &models.User{ID: 1}, 2)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if !view.IsFollowing {
		t.Fatal("expected is_following true")
	}
	if view.IsFollower {
		t.Fatal("expected is_follower false")
	}
}
