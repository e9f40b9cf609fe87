package dto

// AuthRequest describes login/password payload. ReferralCode is only
// honored on registration.
type AuthRequest struct {
	Login        string `json:"login"`
	Password     string `json:"password"`
	ReferralCode string `json:"referral_code,omitempty"`
}
