package model

import "time"

const DefaultTimeout = 500 * time.Millisecond
const DefaultRewardWorkers = 8
const DefaultRewardInflight = 4
const DefaultChannelCapacity = 64
const DefaultHistoryPageSize = 20
const MaxHistoryPageSize = 100

const HeaderContentType = "Content-Type"
const HeaderAdminToken = "X-Admin-Token"

type ContextKey string

const (
	KeyContextLogger ContextKey = "logger"
	KeyContextUserID ContextKey = "user_id"
)

const KeyLoggerError = "error"
