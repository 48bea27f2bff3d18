package dto

// AdminUserDTO 管理端用户列表行，带绑定账号卡片
type AdminUserDTO struct {
	User    *UserDTO     `json:"user"`
	Account *XAccountDTO `json:"xAccount,omitempty"`
}

// HealthDTO 系统健康状态
type HealthDTO struct {
	Status         string `json:"status"`
	Database       string `json:"database"`
	Environment    string `json:"environment"`
	UserCount      int64  `json:"userCount"`
	AdminCount     int64  `json:"adminCount"`
	LinkedAccounts int64  `json:"linkedAccounts"`
}
