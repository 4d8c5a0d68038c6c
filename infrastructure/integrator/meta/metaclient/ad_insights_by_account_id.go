package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/domain"
)

// GetInsightsByAdAccountID busca os insights de gasto e ações da conta no
// nível informado (campanha ou conjunto) para o intervalo de datas pedido
func (c *MetaClient) GetInsightsByAdAccountID(ctx context.Context, accessToken, accountID string, level metadomain.InsightLevel, since, until time.Time) ([]metadomain.EntityInsight, error) {
	params := url.Values{}
	params.Set("level", string(level))
	params.Set("fields", fmt.Sprintf("%s_id,actions,spend", level))
	params.Set("time_range", fmt.Sprintf(`{"since":"%s","until":"%s"}`,
		since.Format(time.DateOnly),
		until.Format(time.DateOnly),
	))
	params.Set("limit", fmt.Sprintf("%d", c.Cfg.Meta.PageLimit))

	endpoint := fmt.Sprintf("%s/%s/act_%s/insights?%s",
		c.Cfg.Meta.BaseURL,
		c.Cfg.Meta.Version,
		accountID,
		params.Encode(),
	)

	var insights []metadomain.EntityInsight

	for endpoint != "" {
		var page struct {
			Data   []metadomain.EntityInsight `json:"data"`
			Paging metadomain.Paging          `json:"paging"`
		}

		if err := c.doGet(ctx, accessToken, endpoint, &page); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"level":      level,
			}).WithError(err).Error("Erro ao buscar insights da conta de anúncios")
			return nil, err
		}

		insights = append(insights, page.Data...)

		endpoint = page.Paging.Next
		if endpoint != "" {
			c.pageDelay(ctx)
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return insights, nil
}
