// Package lifecycle holds the timeouts shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single startup check or graceful shutdown.
const DefaultTimeout = 10 * time.Second
