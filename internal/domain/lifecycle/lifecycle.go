// Package lifecycle holds shared lifecycle constants for startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations such as
// database pings and HTTP server drains.
const DefaultTimeout = 10 * time.Second
