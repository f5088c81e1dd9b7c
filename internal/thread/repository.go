package thread

import (
	"context"

	"github.com/minjikang/book-community/go-api-server/internal/model"
	"gorm.io/gorm"
)

type ThreadRepository struct{}

func NewThreadRepository() *ThreadRepository {
	return &ThreadRepository{}
}

func (r *ThreadRepository) CreateThread(ctx context.Context, db *gorm.DB, thread *model.Thread) error {
	return db.WithContext(ctx).Create(thread).Error
}

func (r *ThreadRepository) CreateEntry(ctx context.Context, db *gorm.DB, entry *model.ThreadEntry) error {
	return db.WithContext(ctx).Create(entry).Error
}

// DeactivateEntriesByMember sets thread_status=false for every entry of the member.
// 멱등: 0건 매칭도 성공으로 처리
func (r *ThreadRepository) DeactivateEntriesByMember(ctx context.Context, db *gorm.DB, memberNum int64) error {
	return db.WithContext(ctx).
		Model(&model.ThreadEntry{}).
		Where("member_num = ?", memberNum).
		Update("thread_status", false).Error
}

// DeleteOrphanEntries permanently removes thread_main rows whose parent thread
// no longer exists. The schema has no FK constraint on thread_num, so orphans
// accumulate whenever a thread is removed while its comments remain.
// thread_status 값과 무관하게 부모 스레드 존재 여부만 본다.
func (r *ThreadRepository) DeleteOrphanEntries(ctx context.Context, db *gorm.DB) (int64, error) {
	subQuery := db.WithContext(ctx).Model(&model.Thread{}).Select("thread_num")

	result := db.WithContext(ctx).
		Where("thread_num NOT IN (?)", subQuery).
		Delete(&model.ThreadEntry{})

	return result.RowsAffected, result.Error
}
