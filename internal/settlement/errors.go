package settlement

import (
	"errors"
	"fmt"
)

// ErrCacheStore is wrapped by CacheStoreError.
var ErrCacheStore = errors.New("failed to store cached settlement")

// CacheStoreError is returned alongside a freshly computed settlement that could
// not be cached. The settlement itself is correct; the group stays Invalid.
type CacheStoreError struct {
	GroupID string
	Err     error
}

func (e *CacheStoreError) Error() string {
	return fmt.Sprintf("group %s: %v: %v", e.GroupID, ErrCacheStore, e.Err)
}

func (e *CacheStoreError) Unwrap() []error {
	return []error{ErrCacheStore, e.Err}
}
