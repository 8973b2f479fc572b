package usecase

import "time"

const (
	defaultPageSize = 20
	maxPageSize     = 100

	accountCacheTTL       = 30 * time.Second
	accountCacheKeyPrefix = "account:"
)
