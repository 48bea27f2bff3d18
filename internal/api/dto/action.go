package dto

// UnfollowDTO 取关请求，必须显式确认
type UnfollowDTO struct {
	TargetXUserID  string `json:"targetXUserId"`
	TargetUsername string `json:"targetUsername"`
	Confirmed      bool   `json:"confirmed"`
}

// UnfollowResultDTO 取关结果
type UnfollowResultDTO struct {
	TargetXUserID  string `json:"targetXUserId"`
	TargetUsername string `json:"targetUsername"`
	Unfollowed     bool   `json:"unfollowed"`
}
