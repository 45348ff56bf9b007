package domain

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsAdmin      bool   `json:"is_admin"`
	TwoFAEnabled bool   `json:"twofa_enabled"`
}

func (u User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

type CreateUser struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
}

type UpdateUser struct {
	Username     *string `json:"username,omitempty"`
	Password     *string `json:"password,omitempty"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	IsAdmin      *bool   `json:"is_admin,omitempty"`
	TwoFAEnabled *bool   `json:"twofa_enabled,omitempty"`
	TwoFACode    *string `json:"twofa_code,omitempty"`
}

// UpdateSelf updates the calling user. Changing the password requires the
// old one; toggling 2FA requires a code once the secret has been issued.
type UpdateSelf struct {
	Password     *string `json:"password,omitempty"`
	OldPassword  *string `json:"old_password,omitempty"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	TwoFAEnabled *bool   `json:"twofa_enabled,omitempty"`
	TwoFACode    *string `json:"twofa_code,omitempty"`
}

// UpdateSelfResponse is a User plus the provisioning URI returned while
// 2FA enrollment is pending.
type UpdateSelfResponse struct {
	User
	TwoFAURI string `json:"twofa_uri,omitempty"`
}

type UserSearchResponse = SearchResponse[User]
