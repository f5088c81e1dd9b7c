package bookreview

import (
	"context"

	"github.com/minjikang/book-community/go-api-server/internal/model"
	"gorm.io/gorm"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, db *gorm.DB, review *model.BookReview) error {
	return db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) FindByMember(ctx context.Context, db *gorm.DB, memberNum int64) ([]model.BookReview, error) {
	var reviews []model.BookReview
	err := db.WithContext(ctx).
		Where("member_num = ?", memberNum).
		Order("review_created_at DESC").
		Find(&reviews).Error

	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// DeactivateByMember marks every review of the member inactive.
// 멱등: 이미 inactive인 행에 다시 실행해도 결과는 같다. 0건 매칭도 성공.
func (r *ReviewRepository) DeactivateByMember(ctx context.Context, db *gorm.DB, memberNum int64) error {
	return db.WithContext(ctx).
		Model(&model.BookReview{}).
		Where("member_num = ?", memberNum).
		Update("review_status", model.ReviewStatusInactive).Error
}
