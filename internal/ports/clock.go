package ports

import "time"

// Clock reports the current instant; "today" is derived from it.
type Clock interface {
	Now() time.Time
}
