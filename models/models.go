package models

import "time"

type Post struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Category  *string    `json:"category"`
	ImageURL  *string    `json:"imageUrl"`
	UserID    string     `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

type Profile struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL string  `json:"avatarUrl"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
	Website   *string `json:"website"`
}

// PostWithAuthor is a post joined with its author profile. Author is nil
// when no profile row exists for the owning user.
type PostWithAuthor struct {
	Post
	Author *Profile `json:"author"`
}

// CommentWithAuthor is a comment joined with the commenter profile. Author
// is nil for anonymous users that never edited a profile.
type CommentWithAuthor struct {
	Comment
	Author *Profile `json:"author"`
}
