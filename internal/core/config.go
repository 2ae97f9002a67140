package core

type AppConfig interface {
	GetRuntimePath() string
	GetBundlesPath() string
	IsTelegramSelected() bool
	IsHTTPSelected() bool
}

// MemoConfig carries the thresholds the memo generator is tuned with.
type MemoConfig interface {
	GetRecencyWindowDays() int
	GetMaxRenderedInteractions() int
	GetRecentContactDays() int
	GetNewsFreshnessDays() int
	GetTimezone() string
}

type TelegramConfig interface {
	GetTelegramToken() string
	GetTelegramOwnerID() int64
}
