// Package seed creates demo data for development environments.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"linkup/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Every seeded account gets this password.
const seedPassword = "Password123!"

// Seeder populates the database with generated users, follows, posts, and
// engagement. Development and demo use only.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder returns a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Dependent tables go first.
func (s *Seeder) ClearAll() error {
	tables := []string{"likes", "comments", "follows", "posts", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	log.Println("Database cleared")
	return nil
}

// SeedUsers creates n verified accounts.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Firstname: gofakeit.FirstName(),
			Lastname:  gofakeit.LastName(),
			Username:  fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:     gofakeit.Email(),
			Mobile:    fmt.Sprintf("+1%d", gofakeit.Number(2000000000, 9999999999)),
			Gender:    gofakeit.Gender(),
			Password:  string(hashed),
			Bio:       gofakeit.Sentence(10),
			ImageURL:  fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
			Verified:  true,
			Prime:     s.rng.Intn(10) == 0,
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("creating user %d: %w", i, err)
		}
		users = append(users, user)
	}

	log.Printf("Seeded %d users", len(users))
	return users, nil
}

// SeedFollows wires a random follow graph where each user follows roughly
// avgFollows others.
func (s *Seeder) SeedFollows(users []*models.User, avgFollows int) error {
	if len(users) < 2 {
		return nil
	}

	edges := 0
	for _, follower := range users {
		n := s.rng.Intn(avgFollows*2 + 1)
		for j := 0; j < n; j++ {
			target := users[s.rng.Intn(len(users))]
			if target.ID == follower.ID {
				continue
			}
			edge := &models.Follow{FollowerID: follower.ID, FolloweeID: target.ID}
			// Duplicate random picks hit the unique index; skip them.
			if err := s.db.Create(edge).Error; err != nil {
				continue
			}
			edges++
		}
	}

	log.Printf("Seeded %d follow edges", edges)
	return nil
}

// SeedPosts creates n posts spread across the given users with realistic
// creation timestamps.
func (s *Seeder) SeedPosts(users []*models.User, n int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rng.Intn(len(users))]
		post := &models.Post{
			Caption: gofakeit.Sentence(8),
			UserID:  author.ID,
		}
		if s.rng.Intn(2) == 0 {
			post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
		}
		daysBack := s.rng.Intn(60)
		minsBack := s.rng.Intn(24 * 60)
		post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(minsBack)*time.Minute)

		if err := s.db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("creating post %d: %w", i, err)
		}
		posts = append(posts, post)
	}

	log.Printf("Seeded %d posts", len(posts))
	return posts, nil
}

// SeedEngagement sprinkles likes and comments over the given posts.
func (s *Seeder) SeedEngagement(users []*models.User, posts []*models.Post) error {
	if len(users) == 0 || len(posts) == 0 {
		return nil
	}

	likes, comments := 0, 0
	for _, post := range posts {
		nLikes := s.rng.Intn(len(users)/2 + 1)
		for j := 0; j < nLikes; j++ {
			user := users[s.rng.Intn(len(users))]
			like := &models.Like{UserID: user.ID, PostID: post.ID}
			if err := s.db.Create(like).Error; err != nil {
				continue
			}
			likes++
		}

		nComments := s.rng.Intn(4)
		for j := 0; j < nComments; j++ {
			user := users[s.rng.Intn(len(users))]
			comment := &models.Comment{
				Content: gofakeit.Sentence(12),
				UserID:  user.ID,
				PostID:  post.ID,
			}
			if err := s.db.Create(comment).Error; err != nil {
				return fmt.Errorf("creating comment: %w", err)
			}
			comments++
		}
	}

	log.Printf("Seeded %d likes, %d comments", likes, comments)
	return nil
}
