package meta

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

// InsightMetrics resume o gasto e o total de conversões de uma entidade em
// uma janela de datas
type InsightMetrics struct {
	Spend       float64
	Conversions float64
}

type Integrator interface {
	ListCampaigns(ctx context.Context, accessToken, accountID string) ([]metadomain.Campaign, error)
	FetchInsights(ctx context.Context, accessToken, accountID string, level metadomain.InsightLevel, since, until time.Time) (map[string]InsightMetrics, error)
	GetEntityStatus(ctx context.Context, accessToken, entityID string) (domain.EntityStatus, error)
	UpdateEntityStatus(ctx context.Context, accessToken, entityID string, status domain.EntityStatus) error
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) ListCampaigns(ctx context.Context, accessToken, accountID string) ([]metadomain.Campaign, error) {
	campaigns, err := s.Client.GetCampaignsByAdAccountID(ctx, accessToken, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("reconciler: failed to list campaigns for ad account")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id":      accountID,
		"total_campaigns": len(campaigns),
	}).Debug("reconciler: successfully listed campaigns")

	return campaigns, nil
}

// FetchInsights consolida os insights brutos da plataforma em um mapa por
// entidade, somando apenas as ações do tipo de conversão configurado
func (s *MetaIntegrator) FetchInsights(ctx context.Context, accessToken, accountID string, level metadomain.InsightLevel, since, until time.Time) (map[string]InsightMetrics, error) {
	insights, err := s.Client.GetInsightsByAdAccountID(ctx, accessToken, accountID, level, since, until)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"level":      level,
			"error":      err.Error(),
		}).Error("reconciler: failed to fetch insights for ad account")
		return nil, err
	}

	metrics := make(map[string]InsightMetrics, len(insights))
	for _, insight := range insights {
		entityID := insight.EntityID(level)
		if entityID == "" {
			continue
		}

		m := metrics[entityID]
		m.Spend += insight.SpendValue()
		m.Conversions += insight.ActionCount(s.cfg.Meta.ConversionActionType)
		metrics[entityID] = m
	}

	return metrics, nil
}

func (s *MetaIntegrator) GetEntityStatus(ctx context.Context, accessToken, entityID string) (domain.EntityStatus, error) {
	status, err := s.Client.GetEntityStatus(ctx, accessToken, entityID)
	if err != nil {
		return "", err
	}

	return domain.EntityStatus(status.Status), nil
}

func (s *MetaIntegrator) UpdateEntityStatus(ctx context.Context, accessToken, entityID string, status domain.EntityStatus) error {
	return s.Client.UpdateEntityStatus(ctx, accessToken, entityID, string(status))
}
