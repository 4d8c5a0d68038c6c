package metaclient

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/domain"
)

// GetEntityStatus lê o status atual de uma campanha ou conjunto de anúncios
// direto da plataforma
func (c *MetaClient) GetEntityStatus(ctx context.Context, accessToken, entityID string) (*metadomain.EntityStatus, error) {
	endpoint := fmt.Sprintf("%s/%s/%s?fields=id,name,status",
		c.Cfg.Meta.BaseURL,
		c.Cfg.Meta.Version,
		entityID,
	)

	var status metadomain.EntityStatus
	if err := c.doGet(ctx, accessToken, endpoint, &status); err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": entityID,
		}).WithError(err).Error("Erro ao buscar o status da entidade")
		return nil, err
	}

	return &status, nil
}

// UpdateEntityStatus altera o status de uma campanha ou conjunto de anúncios
func (c *MetaClient) UpdateEntityStatus(ctx context.Context, accessToken, entityID, status string) error {
	endpoint := fmt.Sprintf("%s/%s/%s",
		c.Cfg.Meta.BaseURL,
		c.Cfg.Meta.Version,
		entityID,
	)

	payload := map[string]string{"status": status}

	if err := c.doPost(ctx, accessToken, endpoint, payload); err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": entityID,
			"status":    status,
		}).WithError(err).Error("Erro ao atualizar o status da entidade")
		return err
	}

	return nil
}
