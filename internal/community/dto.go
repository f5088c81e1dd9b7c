package community

import (
	"time"
)

type CreatePostRequest struct {
	Title   string `json:"post_title" binding:"required,max=200"`
	Content string `json:"post_content" binding:"required"`
	Status  string `json:"post_status" binding:"omitempty,oneof=active inactive"`
	// *bool이어야 JSON 문자열/숫자 강제 변환 없이 boolean만 허용된다
	Visibility *bool `json:"visibility" binding:"required"`
}

type PostResponse struct {
	PostsID    int64     `json:"posts_id"`
	MemberNum  int64     `json:"member_num"`
	Title      string    `json:"post_title"`
	Content    string    `json:"post_content"`
	CreatedAt  time.Time `json:"post_created_at"`
	Status     string    `json:"post_status"`
	Visibility bool      `json:"visibility"`
}

// PostListItem includes author fields joined from the member table.
// Scan은 컬럼명을 필드의 gorm 태그로 매칭하므로 태그가 없으면 빈 값이 된다.
type PostListItem struct {
	PostsID        int64     `gorm:"column:posts_id" json:"posts_id"`
	Title          string    `gorm:"column:post_title" json:"post_title"`
	Content        string    `gorm:"column:post_content" json:"post_content"`
	CreatedAt      time.Time `gorm:"column:post_created_at" json:"post_created_at"`
	Status         string    `gorm:"column:post_status" json:"post_status"`
	Visibility     bool      `gorm:"column:visibility" json:"visibility"`
	MemberNum      int64     `gorm:"column:member_num" json:"member_num"`
	MemberNickname string    `gorm:"column:member_nickname" json:"member_nickname"`
	MemberEmail    string    `gorm:"column:member_email" json:"member_email"`
}

type CreateCommentRequest struct {
	Content string `json:"comment_content" binding:"required"`
}

type CommentResponse struct {
	CommentID int64     `json:"comment_id"`
	PostsID   int64     `json:"posts_id"`
	MemberNum int64     `json:"member_num"`
	Content   string    `json:"comment_content"`
	CreatedAt time.Time `json:"comment_created_at"`
	Status    string    `json:"comment_status"`
}

// CommentListItem includes author fields joined from the member table.
type CommentListItem struct {
	CommentID      int64     `gorm:"column:comment_id" json:"comment_id"`
	PostsID        int64     `gorm:"column:posts_id" json:"posts_id"`
	Content        string    `gorm:"column:comment_content" json:"comment_content"`
	CreatedAt      time.Time `gorm:"column:comment_created_at" json:"comment_created_at"`
	Status         string    `gorm:"column:comment_status" json:"comment_status"`
	MemberNickname string    `gorm:"column:member_nickname" json:"member_nickname"`
	MemberEmail    string    `gorm:"column:member_email" json:"member_email"`
}
