package service

import (
	"context"
	"time"

	"linkup/internal/models"
	"linkup/internal/repository"
)

// UserView is the client-facing shape of an account. Email is populated only
// when the viewer is the account itself; password and OTP never leave the
// model layer.
type UserView struct {
	ID          uint      `json:"id"`
	Firstname   string    `json:"firstname"`
	Lastname    string    `json:"lastname"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Verified    bool      `json:"verified"`
	Prime       bool      `json:"prime"`
	Followers   int64     `json:"followers_count"`
	Following   int64     `json:"following_count"`
	IsFollowing bool      `json:"is_following"`
	IsFollower  bool      `json:"is_follower"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostView is the client-facing shape of a post with its viewer-dependent
// annotations.
type PostView struct {
	ID            uint      `json:"id"`
	Caption       string    `json:"caption"`
	ImageURL      string    `json:"image_url,omitempty"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	Liked         bool      `json:"liked"`
	Author        UserView  `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
}

// CommentView is the client-facing shape of a comment.
type CommentView struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	Author    UserView  `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// Projector builds response views from models, resolving the relationship
// of the viewer to each account as it goes.
type Projector struct {
	followRepo repository.FollowRepository
}

// NewProjector returns a new Projector.
func NewProjector(followRepo repository.FollowRepository) *Projector {
	return &Projector{followRepo: followRepo}
}

// UserView projects a full account view for the given viewer, including
// counts and the follow relationship in both directions.
func (p *Projector) UserView(ctx context.Context, user *models.User, viewerID uint) (*UserView, error) {
	followers, err := p.followRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := p.followRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	view := baseUserView(user)
	view.Followers = followers
	view.Following = following

	if viewerID == user.ID {
		view.Email = user.Email
	} else if viewerID != 0 {
		isFollowing, err := p.followRepo.Exists(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
		isFollower, err := p.followRepo.Exists(ctx, user.ID, viewerID)
		if err != nil {
			return nil, err
		}
		view.IsFollowing = isFollowing
		view.IsFollower = isFollower
	}

	return &view, nil
}

// UserSummaries projects a list of accounts without per-account counts or
// relationship lookups. Used for follower and suggestion lists.
func (p *Projector) UserSummaries(users []models.User) []UserView {
	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, baseUserView(&users[i]))
	}
	return views
}

// PostView projects a post with its pre-computed annotations and a summary
// of the author.
func (p *Projector) PostView(post *models.Post) PostView {
	return PostView{
		ID:            post.ID,
		Caption:       post.Caption,
		ImageURL:      post.ImageURL,
		LikesCount:    post.LikesCount,
		CommentsCount: post.CommentsCount,
		Liked:         post.Liked,
		Author:        baseUserView(&post.User),
		CreatedAt:     post.CreatedAt,
	}
}

// PostViews projects a feed page, preserving order.
func (p *Projector) PostViews(posts []*models.Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, p.PostView(post))
	}
	return views
}

// CommentViews projects a post's comments, preserving order.
func (p *Projector) CommentViews(comments []models.Comment) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		views = append(views, CommentView{
			ID:        c.ID,
			Content:   c.Content,
			Author:    baseUserView(&c.User),
			CreatedAt: c.CreatedAt,
		})
	}
	return views
}

func baseUserView(user *models.User) UserView {
	return UserView{
		ID:        user.ID,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Username:  user.Username,
		Gender:    user.Gender,
		Bio:       user.Bio,
		ImageURL:  user.ImageURL,
		Verified:  user.Verified,
		Prime:     user.Prime,
		CreatedAt: user.CreatedAt,
	}
}
