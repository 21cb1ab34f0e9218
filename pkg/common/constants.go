package common

const (
	PositionStatusOpen   = "OPEN"
	PositionStatusClosed = "CLOSED"

	PositionTypeLong  = "LONG"
	PositionTypeShort = "SHORT"
)

const (
	RedisKeyDashboardSnapshot = "dashboard:snapshot:latest"
	CacheKeyDashboardSnapshot = "dashboard_snapshot"
)
