package locker

import (
	"context"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	lockKeyPrefix    = "lock:fetch_campaign:"
	pendingKeyPrefix = "pending_schedules:"
)

// releaseScript apaga o lock apenas quando o token ainda é o nosso, para
// não derrubar o lock de outro detentor após a concessão expirar
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) TryLock(ctx context.Context, accountID string, lease time.Duration) (LockHandle, bool, error) {
	token, err := gonanoid.New()
	if err != nil {
		return nil, false, errors.Wrap(err, "erro ao gerar o token do lock")
	}

	key := lockKeyPrefix + accountID

	ok, err := l.client.SetNX(ctx, key, token, lease).Result()
	if err != nil {
		return nil, false, errors.Wrapf(err, "erro ao adquirir o lock da conta %s", accountID)
	}

	if !ok {
		return nil, false, nil
	}

	return &redisLockHandle{client: l.client, key: key, token: token}, true, nil
}

func (l *RedisLocker) EnqueuePending(ctx context.Context, accountID string, payload []byte) error {
	key := pendingKeyPrefix + accountID

	if err := l.client.RPush(ctx, key, payload).Err(); err != nil {
		return errors.Wrapf(err, "erro ao enfileirar pendência da conta %s", accountID)
	}

	logrus.WithField("account_id", accountID).Info("lock ocupado, agendamento enfileirado como pendência")

	return nil
}

// DequeuePending devolve a próxima pendência da conta, ou nil quando a fila
// está vazia
func (l *RedisLocker) DequeuePending(ctx context.Context, accountID string) ([]byte, error) {
	key := pendingKeyPrefix + accountID

	payload, err := l.client.LPop(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao desenfileirar pendência da conta %s", accountID)
	}

	return payload, nil
}

type redisLockHandle struct {
	client *redis.Client
	key    string
	token  string
}

func (h *redisLockHandle) Release(ctx context.Context) error {
	released, err := releaseScript.Run(ctx, h.client, []string{h.key}, h.token).Int()
	if err != nil {
		return fmt.Errorf("erro ao liberar o lock %s: %w", h.key, err)
	}

	if released == 0 {
		logrus.WithField("key", h.key).Warn("lock já havia expirado antes da liberação")
	}

	return nil
}
