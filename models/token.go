package models

// CheckTokenResponse is the body of GET /api/check_token.
//
// Valid is decoded without a fixed type: only a JSON boolean true marks the
// token as valid, any other value (string "true", 1, null, missing) does not.
type CheckTokenResponse struct {
	Valid any `json:"valid"`
}

// IsValid reports whether the server returned exactly boolean true.
func (r CheckTokenResponse) IsValid() bool {
	valid, ok := r.Valid.(bool)
	return ok && valid
}

// LoginResponse is the body of POST /api/login.
type LoginResponse struct {
	// Token is the opaque bearer token issued for the new session.
	Token string `json:"token"`
}
