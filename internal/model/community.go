package model

import (
	"time"
)

// Post statuses
// 게시글 삭제는 post_deleted_at 마커, 회원 탈퇴는 post_status='deleted'
const (
	PostStatusActive   = "active"
	PostStatusInactive = "inactive"
	PostStatusDeleted  = "deleted"
)

// Comment statuses
const (
	CommentStatusActive  = "active"
	CommentStatusDeleted = "deleted"
)

// Post represents a community post
type Post struct {
	PostsID   int64     `gorm:"column:posts_id;primaryKey;autoIncrement"`
	MemberNum int64     `gorm:"column:member_num;not null;index:idx_community_member"` // 작성자
	Title     string    `gorm:"column:post_title;type:VARCHAR(200);not null"`
	Content   string    `gorm:"column:post_content;type:TEXT;not null"`
	CreatedAt time.Time `gorm:"column:post_created_at;not null;autoCreateTime"`
	Status    string    `gorm:"column:post_status;type:VARCHAR(10);not null;default:active"` // active | inactive | deleted
	// default 태그를 붙이면 gorm이 false(zero value)를 INSERT에서 빼버려
	// 나만 보기 글이 공개로 저장된다
	Visibility bool       `gorm:"column:visibility;not null"` // true: 전체 공개, false: 나만 보기
	DeletedAt  *time.Time `gorm:"column:post_deleted_at"`     // soft delete 마커
}

// TableName specifies the table name for Post
func (*Post) TableName() string {
	return "community"
}

// Comment represents a comment on a community post
type Comment struct {
	CommentID int64      `gorm:"column:comment_id;primaryKey;autoIncrement"`
	PostsID   int64      `gorm:"column:posts_id;not null;index:idx_comment_post"`
	MemberNum int64      `gorm:"column:member_num;not null;index:idx_comment_member"`
	Content   string     `gorm:"column:comment_content;type:TEXT;not null"`
	CreatedAt time.Time  `gorm:"column:comment_created_at;not null;autoCreateTime"`
	Status    string     `gorm:"column:comment_status;type:VARCHAR(10);not null;default:active"`
	DeletedAt *time.Time `gorm:"column:comment_deleted_at"`
}

// TableName specifies the table name for Comment
func (*Comment) TableName() string {
	return "community_comment"
}
