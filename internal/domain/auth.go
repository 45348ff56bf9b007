package domain

// AuthRequest is the login payload. TwoFACode is only sent once the
// backend has answered with a 2FA challenge.
type AuthRequest struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	TwoFACode *string `json:"twofacode,omitempty"`
}

// AuthResponse is the union of the two shapes the login endpoint can
// return: a token grant or a 2FA challenge.
type AuthResponse struct {
	AccessToken   string `json:"access_token,omitempty"`
	TokenType     string `json:"token_type,omitempty"`
	TwoFAEnabled  bool   `json:"twofa_enabled,omitempty"`
	TwoFARequired bool   `json:"twofarequired,omitempty"`
}
