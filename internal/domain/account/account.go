package account

import (
	"time"
)

// Context is the account a browsing session acts on behalf of. IsManager
// gates the create-item capability.
type Context struct {
	ID        string
	Name      string
	IsManager bool
	CreatedAt time.Time
}
