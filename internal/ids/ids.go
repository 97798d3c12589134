package ids

import "github.com/segmentio/ksuid"

// New returns a sortable unique id for entity primary keys.
func New() string {
	return ksuid.New().String()
}
