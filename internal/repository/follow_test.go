package repository

import (
	"context"
	"fmt"
	"testing"

	"linkup/internal/database"
	"linkup/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.Registry()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Firstname: "Test",
		Lastname:  "User",
		Username:  username,
		Email:     username + "@example.com",
		Mobile:    fmt.Sprintf("+1555%07d", len(username)*13+int(username[0])),
		Password:  "hashed",
		Verified:  true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func TestFollowEdgeMirror(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	if err := repo.CreateEdge(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("create edge: %v", err)
	}

	// One row serves both projections.
	following, err := repo.Following(ctx, alice.ID)
	if err != nil {
		t.Fatalf("following: %v", err)
	}
	if len(following) != 1 || following[0].ID != bob.ID {
		t.Fatalf("expected alice to follow bob, got %v", following)
	}

	followers, err := repo.Followers(ctx, bob.ID)
	if err != nil {
		t.Fatalf("followers: %v", err)
	}
	if len(followers) != 1 || followers[0].ID != alice.ID {
		t.Fatalf("expected bob followed by alice, got %v", followers)
	}

	// The reverse direction stays empty.
	reverse, err := repo.Followers(ctx, alice.ID)
	if err != nil {
		t.Fatalf("followers of alice: %v", err)
	}
	if len(reverse) != 0 {
		t.Fatalf("expected no followers of alice, got %v", reverse)
	}
}

func TestFollowEdgeDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	if err := repo.CreateEdge(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("create edge: %v", err)
	}

	err := repo.CreateEdge(ctx, alice.ID, bob.ID)
	if err == nil {
		t.Fatal("expected duplicate edge to fail")
	}
	appErr, ok := err.(*models.AppError)
	if !ok || appErr.Code != models.CodeAlreadyExists {
		t.Fatalf("expected ALREADY_EXISTS, got %#v", err)
	}

	var count int64
	db.Model(&models.Follow{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected single edge row, got %d", count)
	}
}

func TestDeleteEdgeNotThere(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	err := repo.DeleteEdge(ctx, alice.ID, bob.ID)
	appErr, ok := err.(*models.AppError)
	if !ok || appErr.Code != models.CodeEdgeNotFound {
		t.Fatalf("expected EDGE_NOT_FOUND, got %#v", err)
	}
}

func TestDeleteEdgeDirectional(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	if err := repo.CreateEdge(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("create edge: %v", err)
	}
	if err := repo.CreateEdge(ctx, bob.ID, alice.ID); err != nil {
		t.Fatalf("create reverse edge: %v", err)
	}

	// Deleting alice -> bob must leave bob -> alice intact.
	if err := repo.DeleteEdge(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("delete edge: %v", err)
	}

	exists, err := repo.Exists(ctx, bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("reverse edge must survive deletion of the forward edge")
	}
}

func TestFollowingIDsAndCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	if err := repo.CreateEdge(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("edge 1: %v", err)
	}
	if err := repo.CreateEdge(ctx, alice.ID, carol.ID); err != nil {
		t.Fatalf("edge 2: %v", err)
	}
	if err := repo.CreateEdge(ctx, bob.ID, alice.ID); err != nil {
		t.Fatalf("edge 3: %v", err)
	}

	ids, err := repo.FollowingIDs(ctx, alice.ID)
	if err != nil {
		t.Fatalf("following ids: %v", err)
	}
	if len(ids) != 2 || ids[0] != bob.ID || ids[1] != carol.ID {
		t.Fatalf("expected [%d %d], got %v", bob.ID, carol.ID, ids)
	}

	nFollowing, _ := repo.CountFollowing(ctx, alice.ID)
	nFollowers, _ := repo.CountFollowers(ctx, alice.ID)
	if nFollowing != 2 || nFollowers != 1 {
		t.Fatalf("expected 2 following / 1 follower, got %d / %d", nFollowing, nFollowers)
	}
}
