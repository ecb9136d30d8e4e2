package types

import (
	"time"

	"github.com/refind-dev/refind/internal/models"
)

// UserSummary is the reduced user representation used for signup and
// login responses. It carries no nested collections.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse is the full user representation, including owned posts
// and comments. The password hash is never serialized.
type UserResponse struct {
	ID              uint              `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Username        string            `json:"username"`
	Bio             string            `json:"bio"`
	ProfileImageURL string            `json:"profile_image_url"`
	Posts           []PostResponse    `json:"posts"`
	Comments        []CommentResponse `json:"comments"`
}

type PostResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Filename    string    `json:"filename"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      uint      `json:"user_id"`
}

type CommentResponse struct {
	ID     uint   `json:"id"`
	Body   string `json:"comment"`
	PostID uint   `json:"post_id"`
	UserID uint   `json:"user_id"`
}

type ImageResponse struct {
	ID       uint   `json:"id"`
	UUID     string `json:"uuid"`
	Name     string `json:"name"`
	MimeType string `json:"mimetype"`
}

func NewUserSummary(user models.User) UserSummary {
	return UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func NewUserResponse(user models.User) UserResponse {
	posts := make([]PostResponse, 0, len(user.Posts))

	for _, post := range user.Posts {
		posts = append(posts, NewPostResponse(post))
	}

	comments := make([]CommentResponse, 0, len(user.Comments))

	for _, comment := range user.Comments {
		comments = append(comments, NewCommentResponse(comment))
	}

	return UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Username:        user.Username,
		Bio:             user.Bio,
		ProfileImageURL: user.ProfileImageURL,
		Posts:           posts,
		Comments:        comments,
	}
}

func NewPostResponse(post models.Post) PostResponse {
	return PostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		Category:    post.Category,
		Filename:    post.Filename,
		Location:    post.Location,
		CreatedAt:   post.CreatedAt,
		UserID:      post.UserID,
	}
}

func NewCommentResponse(comment models.Comment) CommentResponse {
	return CommentResponse{
		ID:     comment.ID,
		Body:   comment.Body,
		PostID: comment.PostID,
		UserID: comment.UserID,
	}
}

func NewImageResponse(image models.Image) ImageResponse {
	return ImageResponse{
		ID:       image.ID,
		UUID:     image.UUID,
		Name:     image.Name,
		MimeType: image.MimeType,
	}
}
