package dto

import "time"

// AddWhitelistDTO 加入白名单
type AddWhitelistDTO struct {
	XUserID     string `json:"xUserId" validate:"required"`
	Username    string `json:"username" validate:"required"`
	DisplayName string `json:"displayName"`
	Reason      string `json:"reason" validate:"omitempty,max=200"`
}

// WhitelistEntryDTO 白名单行
type WhitelistEntryDTO struct {
	ID          string    `json:"id"`
	XUserID     string    `json:"xUserId"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
