package model

import (
	"time"
)

// BookReview statuses
const (
	ReviewStatusActive   = "active"
	ReviewStatusInactive = "inactive"
)

// BookReview represents a member's book review
type BookReview struct {
	ReviewID  int64     `gorm:"column:review_id;primaryKey;autoIncrement"`
	MemberNum int64     `gorm:"column:member_num;not null;index:idx_review_member"`
	Content   string    `gorm:"column:review_content;type:TEXT"`
	CreatedAt time.Time `gorm:"column:review_created_at;not null;autoCreateTime"`
	Status    string    `gorm:"column:review_status;type:VARCHAR(10);not null;default:active"` // active | inactive
}

// TableName specifies the table name for BookReview
func (*BookReview) TableName() string {
	return "book_review"
}
