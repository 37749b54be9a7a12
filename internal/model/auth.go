package model

// AuthClaims is the decoded session token. The token itself is the full
// session: nothing is stored server-side.
type AuthClaims struct {
	Subject int64  `json:"sub"`
	Role    Role   `json:"role"`
	Name    string `json:"name"` // admin username or employee email
	TokenID string `json:"jti"`
}

type AdminInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// TokenResponse mirrors the login payload the UI expects: the token plus
// the authenticated principal. Exactly one of User/Employee is set.
type TokenResponse struct {
	Token    string          `json:"token"`
	Role     Role            `json:"role"`
	User     *AdminInfo      `json:"user,omitempty"`
	Employee *PublicEmployee `json:"employee,omitempty"`
}
