package annotation

import (
	"github.com/rs/xid"
)

// NewID returns a unique annotation id. xid ids start with a timestamp and
// end with a random payload, so ids never collide within a session and sort
// by creation time.
func NewID() string {
	return xid.New().String()
}
