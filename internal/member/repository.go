package member

import (
	"context"
	"time"

	"github.com/minjikang/book-community/go-api-server/internal/model"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (m *MemberRepository) IsExist(ctx context.Context, db *gorm.DB, loginID, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("member_id = ? OR member_email = ?", loginID, email).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// IsEmailTakenByOther checks email uniqueness excluding the member's own row.
// 프로필 수정 전에 호출된다 (repository 자체는 재검사하지 않음)
func (m *MemberRepository) IsEmailTakenByOther(ctx context.Context, db *gorm.DB, email string, memberNum int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("member_email = ? AND member_num != ?", email, memberNum).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

func (m *MemberRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("member_email = ?", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, memberNum int64) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("member_num = ?", memberNum).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateProfile applies the given column subset (coalesce semantics: callers
// only include columns that were actually supplied).
func (m *MemberRepository) UpdateProfile(ctx context.Context, db *gorm.DB, memberNum int64, updates map[string]interface{}) (int64, error) {
	result := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("member_num = ?", memberNum).
		Updates(updates)

	return result.RowsAffected, result.Error
}

// AppendNicknameChange records one immutable nickname-history entry.
func (m *MemberRepository) AppendNicknameChange(ctx context.Context, db *gorm.DB, memberNum int64, newNickname string, changedAt time.Time) error {
	change := model.NicknameChange{
		MemberNum:   memberNum,
		NewNickname: newNickname,
		ChangeDate:  changedAt,
	}
	return db.WithContext(ctx).Create(&change).Error
}

// FindNicknameHistory returns nickname changes, newest first.
func (m *MemberRepository) FindNicknameHistory(ctx context.Context, db *gorm.DB, memberNum int64) ([]model.NicknameChange, error) {
	var history []model.NicknameChange
	err := db.WithContext(ctx).
		Where("member_num = ?", memberNum).
		Order("change_date DESC").
		Find(&history).Error

	if err != nil {
		return nil, err
	}
	return history, nil
}

// UpdateStatus sets the member status and, for deactivation, the leave date.
// Returns the number of affected rows (0 means the member row is gone).
func (m *MemberRepository) UpdateStatus(ctx context.Context, db *gorm.DB, memberNum int64, status string, leaveDate *time.Time) (int64, error) {
	updates := map[string]interface{}{
		"member_status": status,
	}
	if leaveDate != nil {
		updates["member_leave_date"] = *leaveDate
	}

	result := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("member_num = ?", memberNum).
		Updates(updates)

	return result.RowsAffected, result.Error
}
