package ordernum

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Order numbers are the customer-facing correlation key spanning quote,
// payment and shipment. Format: "FL" + unix milliseconds + a three digit
// per-process sequence. The sequence guards against two calls landing on
// the same millisecond; wall-clock granularity alone is not enough when
// several requests arrive in the same instant.

const prefix = "FL"

var seq atomic.Uint64

// Next returns a fresh order number. Values are unique within the
// process and sort roughly by creation time.
func Next() string {
	n := seq.Add(1)
	return fmt.Sprintf("%s%d%04d", prefix, time.Now().UnixMilli(), n)
}
