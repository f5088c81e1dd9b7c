package member

const (
	// 날짜 표기 형식 (프론트 요구사항)
	birthDateLayout  = "2006.01.02"
	changeDateLayout = "2006.01.02 15:04"
)

type GetProfileResponse struct {
	MemberNum        int64  `json:"member_num"`
	LoginID          string `json:"member_id"`
	Email            string `json:"member_email"`
	Phone            string `json:"member_phone"`
	Gender           string `json:"member_gender,omitempty"`
	Nickname         string `json:"member_nickname"`
	BirthDate        string `json:"member_birth_date,omitempty"`
	Status           string `json:"member_status"`
	JoinDate         string `json:"member_join_date"`
	LeaveDate        string `json:"member_leave_date,omitempty"`
	MarketingConsent bool   `json:"marketing_consent"`
}

// UpdateProfileRequest is a partial update: nil fields keep their stored values.
type UpdateProfileRequest struct {
	Email            *string `json:"member_email" binding:"omitempty,safe_email,max=255"`
	Phone            *string `json:"member_phone" binding:"omitempty,phone"`
	Nickname         *string `json:"member_nickname" binding:"omitempty,min=1,max=20"`
	MarketingConsent *bool   `json:"marketing_consent"`
}

type UpdateProfileResponse struct {
	Message string               `json:"message"`
	Data    UpdatedProfileFields `json:"data"`
}

type UpdatedProfileFields struct {
	MemberNum        int64  `json:"member_num"`
	LoginID          string `json:"member_id"`
	Email            string `json:"member_email"`
	Phone            string `json:"member_phone"`
	Nickname         string `json:"member_nickname"`
	MarketingConsent bool   `json:"marketing_consent"`
}

type NicknameHistoryItem struct {
	NewNickname string `json:"new_nickname"`
	ChangeDate  string `json:"change_date"`
}

type DeactivateResponse struct {
	Message   string `json:"message"`
	MemberNum int64  `json:"member_num"`
	Status    string `json:"member_status"`
}
