package community

import "time"

// Post categories. PARTNERSHIP posts advertise a cross-category pairing
// and carry the two store categories.
const (
	CategoryGeneral     = "GENERAL"
	CategoryPartnership = "PARTNERSHIP"
)

const maxCommentLength = 500

type Post struct {
	ID                   int64     `json:"id"`
	Title                string    `json:"title"`
	Content              string    `json:"content"`
	Category             string    `json:"category"`
	ImageURL             *string   `json:"imageUrl"`
	MyStoreCategory      *string   `json:"myStoreCategory"`
	PartnerStoreCategory *string   `json:"partnerStoreCategory"`
	CommentCount         int       `json:"commentCount"`
	CreatedAt            time.Time `json:"createdAt"`
}

type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostDetail is a post with its comments, oldest first.
type PostDetail struct {
	Post
	Comments []Comment `json:"comments"`
}
