package dto

// RegisterRequest payload for new accounts. Role is accepted for wire
// compatibility but ignored: self-registration always yields USER.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// IdentityResponse describes the authenticated caller.
type IdentityResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
