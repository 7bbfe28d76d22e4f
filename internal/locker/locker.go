package locker

import (
	"context"
	"errors"
)

var ErrLockTimeout = errors.New("lock wait cancelled")

// Locker serializes work on a key. Lock blocks until the key is free or ctx
// is done; the returned func releases the lock and is safe to call once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
