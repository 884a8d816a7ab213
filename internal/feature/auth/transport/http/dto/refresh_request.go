package dto

// RefreshReq represents the optional JSON body of /refresh-token.
// The token may also arrive in the refreshToken cookie, which wins.
type RefreshReq struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenPairRes represents the response for a successful login or refresh.
type TokenPairRes struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
