// File: utils/constants.go
package utils

import "time"

// AvailabilityCachePrefix is the prefix for cached month-availability keys.
const AvailabilityCachePrefix = "avail:"

// AvailabilityCacheTTL is the time-to-live for cached month results.
const AvailabilityCacheTTL = 15 * time.Minute

// SessionCachePrefix is the prefix for view-session keys.
const SessionCachePrefix = "viewsession:"

// SessionCacheTTL is the time-to-live for idle view sessions.
const SessionCacheTTL = 30 * time.Minute
