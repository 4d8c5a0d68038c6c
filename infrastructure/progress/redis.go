package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type payload struct {
	Message []string `json:"message"`
}

// RedisSink grava a última mensagem de progresso por usuário e conta. A
// chave expira à meia-noite seguinte no fuso do negócio, então o painel
// nunca mostra progresso de dias anteriores.
type RedisSink struct {
	client   *redis.Client
	location *time.Location
	now      func() time.Time
}

func NewRedisSink(client *redis.Client, location *time.Location) *RedisSink {
	return &RedisSink{
		client:   client,
		location: location,
		now:      time.Now,
	}
}

func (s *RedisSink) Publish(ctx context.Context, userID, accountID, message string) error {
	raw, err := json.Marshal(payload{Message: []string{message}})
	if err != nil {
		return errors.Wrap(err, "erro ao serializar a mensagem de progresso")
	}

	key := progressKey(userID, accountID)

	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return errors.Wrapf(err, "erro ao publicar progresso em %s", key)
	}

	if err := s.client.ExpireAt(ctx, key, s.nextMidnight()).Err(); err != nil {
		logrus.WithField("key", key).WithError(err).Warn("erro ao definir expiração da chave de progresso")
	}

	return nil
}

func (s *RedisSink) Clear(ctx context.Context, userID, accountID string) error {
	key := progressKey(userID, accountID)

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "erro ao remover a chave de progresso %s", key)
	}

	return nil
}

func (s *RedisSink) nextMidnight() time.Time {
	now := s.now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, s.location)
}

func progressKey(userID, accountID string) string {
	return fmt.Sprintf("%s-%s-key", userID, accountID)
}
