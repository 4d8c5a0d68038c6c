package progress

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Sink publica mensagens de progresso da reconciliação para o dono do
// agendamento acompanhar em tempo quase real
type Sink interface {
	Publish(ctx context.Context, userID, accountID, message string) error
	Clear(ctx context.Context, userID, accountID string) error
}

// NopSink registra as mensagens apenas no log, útil em desenvolvimento sem
// Redis disponível
type NopSink struct{}

func (NopSink) Publish(_ context.Context, userID, accountID, message string) error {
	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"account_id": accountID,
	}).Info(message)
	return nil
}

func (NopSink) Clear(_ context.Context, _, _ string) error {
	return nil
}
