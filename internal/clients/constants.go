package clients

import "time"

const (
	MAX_RETRIES     = 3
	RETRY_BACKOFF   = 250 * time.Millisecond
	CACHE_TTL_SECS  = 86400
	VALKEY_KEY_BASE = "journal:sentiment:"
)
