package consts

const (
	ProvisionedEmailDomain = "x-analytics.app"
)

const (
	DefaultGrowthWindowDays = 30
	InactivitySampleLimit   = 1000
)
