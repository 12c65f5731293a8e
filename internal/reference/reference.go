// Package reference encodes the correlation reference that rides through the
// Gateway. The bridge keeps no state between initiation and webhook, so the
// reference is the only link back to the originating Store order.
package reference

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const prefix = "shopify_order_"

// pattern is anchored at the literal prefix; everything after the order id's
// trailing underscore is the uniqueness token and carries no meaning.
var pattern = regexp.MustCompile(`^shopify_order_(\d+)_`)

// Codec builds and parses correlation references. Now is injectable so tests
// get deterministic tokens; the zero value is not usable, use NewCodec.
type Codec struct {
	now func() time.Time
}

func NewCodec() *Codec {
	return &Codec{now: time.Now}
}

// NewCodecWithClock is used by tests that need a fixed uniqueness token.
func NewCodecWithClock(now func() time.Time) *Codec {
	return &Codec{now: now}
}

// Encode produces "shopify_order_<id>_<unixMilli>". The millisecond timestamp
// keeps repeated attempts for the same order visually distinguishable; Decode
// never looks at it.
func (c *Codec) Encode(orderID int64) string {
	return fmt.Sprintf("%s%d_%d", prefix, orderID, c.now().UnixMilli())
}

// Decode extracts the order id from a reference. The second return is false
// when the shape does not match; malformed or foreign references are an
// expected condition, not an error.
func (c *Codec) Decode(ref string) (int64, bool) {
	m := pattern.FindStringSubmatch(ref)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		// Digits that overflow int64; treat like any other foreign reference.
		return 0, false
	}
	return id, true
}
