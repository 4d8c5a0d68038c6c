package locker

import (
	"context"
	"time"
)

// LockHandle representa a posse de um lock adquirido. Release é seguro
// mesmo quando a concessão já expirou no servidor.
type LockHandle interface {
	Release(ctx context.Context) error
}

// Locker serializa a reconciliação por conta de anúncios. Uma tentativa que
// não adquire o lock deixa o trabalho na fila de pendências da conta para
// ser drenado por quem detém o lock.
type Locker interface {
	TryLock(ctx context.Context, accountID string, lease time.Duration) (LockHandle, bool, error)
	EnqueuePending(ctx context.Context, accountID string, payload []byte) error
	DequeuePending(ctx context.Context, accountID string) ([]byte, error)
}
