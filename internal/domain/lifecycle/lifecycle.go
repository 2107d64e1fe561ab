// Package lifecycle holds process lifecycle settings shared by deliveries.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a delivery.
const DefaultTimeout = 10 * time.Second
