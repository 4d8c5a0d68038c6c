package meta_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	meta "github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func metaTestConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{
			ConversionActionType: "omni_initiated_checkout",
		},
	}
}

func TestMetaIntegrator_FetchInsights(t *testing.T) {
	ctx := context.Background()
	since := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	until := since

	tests := []struct {
		name     string
		level    metadomain.InsightLevel
		insights []metadomain.EntityInsight
		expected map[string]meta.InsightMetrics
	}{
		{
			name:  "Soma gasto e conversões por campanha entre páginas",
			level: metadomain.LevelCampaign,
			insights: []metadomain.EntityInsight{
				{
					CampaignID: "c1",
					Spend:      "40.50",
					Actions: []metadomain.Action{
						{ActionType: "omni_initiated_checkout", Value: "3"},
						{ActionType: "link_click", Value: "90"},
					},
				},
				{
					CampaignID: "c1",
					Spend:      "9.50",
					Actions: []metadomain.Action{
						{ActionType: "omni_initiated_checkout", Value: "2"},
					},
				},
				{
					CampaignID: "c2",
					Spend:      "15.00",
				},
			},
			expected: map[string]meta.InsightMetrics{
				"c1": {Spend: 50.0, Conversions: 5},
				"c2": {Spend: 15.0, Conversions: 0},
			},
		},
		{
			name:  "No nível adset a chave é o adset_id",
			level: metadomain.LevelAdSet,
			insights: []metadomain.EntityInsight{
				{
					AdSetID: "a1",
					Spend:   "10.00",
					Actions: []metadomain.Action{
						{ActionType: "omni_initiated_checkout", Value: "1"},
					},
				},
			},
			expected: map[string]meta.InsightMetrics{
				"a1": {Spend: 10.0, Conversions: 1},
			},
		},
		{
			name:  "Linha sem id da entidade do nível consultado é descartada",
			level: metadomain.LevelAdSet,
			insights: []metadomain.EntityInsight{
				{CampaignID: "c1", Spend: "10.00"},
			},
			expected: map[string]meta.InsightMetrics{},
		},
		{
			name:  "Outros tipos de ação não contam como conversão",
			level: metadomain.LevelCampaign,
			insights: []metadomain.EntityInsight{
				{
					CampaignID: "c1",
					Spend:      "20.00",
					Actions: []metadomain.Action{
						{ActionType: "link_click", Value: "50"},
						{ActionType: "purchase", Value: "4"},
					},
				},
			},
			expected: map[string]meta.InsightMetrics{
				"c1": {Spend: 20.0, Conversions: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			client.EXPECT().
				GetInsightsByAdAccountID(ctx, "token", "act123", tt.level, since, until).
				Return(tt.insights, nil)

			integrator := meta.New(metaTestConfig(), client)

			metrics, err := integrator.FetchInsights(ctx, "token", "act123", tt.level, since, until)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, metrics)
		})
	}
}

func TestMetaIntegrator_FetchInsights_ClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	since := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		GetInsightsByAdAccountID(ctx, "token", "act123", metadomain.LevelCampaign, since, since).
		Return(nil, errors.New("rate limit"))

	integrator := meta.New(metaTestConfig(), client)

	metrics, err := integrator.FetchInsights(ctx, "token", "act123", metadomain.LevelCampaign, since, since)
	assert.Error(t, err)
	assert.Nil(t, metrics)
}

func TestMetaIntegrator_GetEntityStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		GetEntityStatus(ctx, "token", "c1").
		Return(&metadomain.EntityStatus{ID: "c1", Name: "Summer-SALE", Status: "PAUSED"}, nil)

	integrator := meta.New(metaTestConfig(), client)

	status, err := integrator.GetEntityStatus(ctx, "token", "c1")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, status)
}

func TestMetaIntegrator_UpdateEntityStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		UpdateEntityStatus(ctx, "token", "c1", "PAUSED").
		Return(nil)

	integrator := meta.New(metaTestConfig(), client)

	err := integrator.UpdateEntityStatus(ctx, "token", "c1", domain.StatusPaused)
	assert.NoError(t, err)
}
