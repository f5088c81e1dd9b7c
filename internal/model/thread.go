package model

import (
	"time"
)

// Thread is the parent aggregate for thread comments.
// 스레드 자체의 생명주기는 다른 서비스가 관리한다.
type Thread struct {
	ThreadNum int64     `gorm:"column:thread_num;primaryKey;autoIncrement"`
	Title     string    `gorm:"column:thread_title;type:VARCHAR(200)"`
	CreatedAt time.Time `gorm:"column:thread_created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for Thread
func (*Thread) TableName() string {
	return "thread"
}

// ThreadEntry is a comment (or reply) belonging to a thread.
// thread_num은 DB FK 제약 없이 애플리케이션 레벨에서만 참조되므로,
// 부모 스레드가 사라진 행은 고아가 되어 물리 삭제 대상이 된다.
type ThreadEntry struct {
	ThreadCommentNum int64     `gorm:"column:thread_comment_num;primaryKey;autoIncrement"`
	ThreadNum        int64     `gorm:"column:thread_num;not null;index:idx_thread_main_thread"`
	MemberNum        int64     `gorm:"column:member_num;not null;index:idx_thread_main_member"`
	Content          string    `gorm:"column:thread_content;type:TEXT"`
	CreatedAt        time.Time `gorm:"column:thread_created_at;not null;autoCreateTime"`
	// default 태그 금지: false로 생성한 행이 true로 저장된다
	Status bool `gorm:"column:thread_status;not null"` // false면 비활성 (soft delete)
}

// TableName specifies the table name for ThreadEntry
func (*ThreadEntry) TableName() string {
	return "thread_main"
}
