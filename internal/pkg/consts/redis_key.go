package consts

const (
	TokenBlacklistKey = "auth:token:blacklist:"
)

const (
	AccountSyncLock = "sync:account:lock:"
)
