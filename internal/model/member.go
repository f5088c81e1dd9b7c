package model

import (
	"time"
)

// Member statuses
const (
	MemberStatusActive   = "active"
	MemberStatusInactive = "inactive"
)

// Member represents a community member
// 탈퇴는 물리 삭제가 아니라 member_status='inactive' + member_leave_date 기록
type Member struct {
	// Primary key
	MemberNum int64 `gorm:"column:member_num;primaryKey;autoIncrement"`

	// Core fields
	LoginID          string     `gorm:"column:member_id;type:VARCHAR(50);not null;uniqueIndex:idx_member_login_id"`  // 로그인 아이디 (unique)
	Password         string     `gorm:"column:password;type:VARCHAR(60);not null"`                                   // 암호화된 비밀번호
	Email            string     `gorm:"column:member_email;type:VARCHAR(255);not null;uniqueIndex:idx_member_email"` // 이메일 (unique)
	Phone            string     `gorm:"column:member_phone;type:VARCHAR(11);not null"`                               // 핸드폰 번호 (010XXXXXXXX)
	Gender           string     `gorm:"column:member_gender;type:VARCHAR(10)"`                                       // 성별
	Nickname         string     `gorm:"column:member_nickname;type:VARCHAR(20);not null"`                            // 닉네임 (1~20자)
	BirthDate        *time.Time `gorm:"column:member_birth_date"`                                                    // 생년월일
	Status           string     `gorm:"column:member_status;type:VARCHAR(10);not null;default:active"`               // active | inactive
	JoinDate         time.Time  `gorm:"column:member_join_date;not null;autoCreateTime"`                             // 가입일
	LeaveDate        *time.Time `gorm:"column:member_leave_date"`                                                    // 탈퇴일 (탈퇴 시에만 기록)
	MarketingConsent bool       `gorm:"column:marketing_consent;not null;default:false"`                             // 마케팅 수신 동의
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates a new Member instance
// Note: password must already be hashed (handled in service layer)
func NewMember(loginID, password, email, phone, gender, nickname string, birthDate *time.Time, marketingConsent bool) *Member {
	return &Member{
		LoginID:          loginID,
		Password:         password,
		Email:            email,
		Phone:            phone,
		Gender:           gender,
		Nickname:         nickname,
		BirthDate:        birthDate,
		Status:           MemberStatusActive,
		MarketingConsent: marketingConsent,
	}
}

// NicknameChange is an append-only log entry for nickname changes.
// 닉네임이 실제로 변경된 경우에만 한 건 기록되며 이후 수정되지 않는다.
type NicknameChange struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	MemberNum   int64     `gorm:"column:member_num;not null;index:idx_nickname_member"`
	NewNickname string    `gorm:"column:new_nickname;type:VARCHAR(20);not null"`
	ChangeDate  time.Time `gorm:"column:change_date;not null"`
}

// TableName specifies the table name for NicknameChange
func (*NicknameChange) TableName() string {
	return "member_nickname"
}
