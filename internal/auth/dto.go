package auth

type JoinRequest struct {
	LoginID          string `json:"member_id" binding:"required,min=4,max=50"`
	Password         string `json:"password" binding:"required,min=8,max=15"`
	Email            string `json:"member_email" binding:"required,safe_email,max=255"`
	Phone            string `json:"member_phone" binding:"required,phone"`
	Gender           string `json:"member_gender" binding:"omitempty,oneof=male female"`
	Nickname         string `json:"member_nickname" binding:"required,min=1,max=20"`
	BirthDate        string `json:"member_birth_date" binding:"omitempty,datetime=2006.01.02"`
	MarketingConsent bool   `json:"marketing_consent"`
}

type LoginRequest struct {
	Email    string `json:"member_email" binding:"required,safe_email"`
	Password string `json:"password" binding:"required,min=8,max=15"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
