package reconciling

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

// StatusUpdater aplica uma mudança de status na plataforma e confirma que
// ela pegou relendo a entidade. A releitura espera um pouco porque a
// plataforma propaga a escrita de forma assíncrona.
type StatusUpdater struct {
	integrator  meta.Integrator
	maxAttempts int
	verifyDelay time.Duration
	backoffUnit time.Duration
}

func NewStatusUpdater(integrator meta.Integrator, maxAttempts int, verifyDelay time.Duration) *StatusUpdater {
	return &StatusUpdater{
		integrator:  integrator,
		maxAttempts: maxAttempts,
		verifyDelay: verifyDelay,
		backoffUnit: time.Second,
	}
}

// EnsureStatus tenta levar a entidade ao status alvo, verificando cada
// tentativa. Devolve true quando a releitura confirma o alvo; false quando
// todas as tentativas se esgotam sem confirmação.
func (u *StatusUpdater) EnsureStatus(ctx context.Context, accessToken, entityID string, target domain.EntityStatus) (bool, error) {
	for attempt := 1; attempt <= u.maxAttempts; attempt++ {
		if err := u.integrator.UpdateEntityStatus(ctx, accessToken, entityID, target); err != nil {
			// Erro permanente da plataforma não muda entre tentativas
			var apiErr *metadomain.APIError
			if errors.As(err, &apiErr) && !apiErr.IsTransient() {
				logrus.WithFields(logrus.Fields{
					"entity_id": entityID,
					"target":    target,
					"attempt":   attempt,
				}).WithError(err).Error("erro permanente da plataforma ao atualizar status, abortando as tentativas")
				return false, err
			}

			logrus.WithFields(logrus.Fields{
				"entity_id": entityID,
				"target":    target,
				"attempt":   attempt,
			}).WithError(err).Warn("erro ao enviar atualização de status, tentando novamente")
		} else {
			if err := u.sleep(ctx, u.verifyDelay); err != nil {
				return false, err
			}

			current, err := u.integrator.GetEntityStatus(ctx, accessToken, entityID)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"entity_id": entityID,
					"attempt":   attempt,
				}).WithError(err).Warn("erro ao reler o status da entidade")
			} else if current == target {
				logrus.WithFields(logrus.Fields{
					"entity_id": entityID,
					"target":    target,
					"attempt":   attempt,
				}).Info("status da entidade confirmado")
				return true, nil
			}
		}

		if attempt < u.maxAttempts {
			// espera 2^attempt segundos antes da próxima tentativa
			backoff := u.backoffUnit * time.Duration(1<<attempt)
			if err := u.sleep(ctx, backoff); err != nil {
				return false, err
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"entity_id": entityID,
		"target":    target,
		"attempts":  u.maxAttempts,
	}).Error("status da entidade não confirmado após todas as tentativas")

	return false, nil
}

func (u *StatusUpdater) sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
