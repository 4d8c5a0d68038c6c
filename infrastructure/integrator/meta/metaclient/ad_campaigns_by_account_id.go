package metaclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/domain"
)

// GetCampaignsByAdAccountID busca todas as campanhas da conta com seus
// conjuntos de anúncios aninhados, percorrendo a paginação até o fim
func (c *MetaClient) GetCampaignsByAdAccountID(ctx context.Context, accessToken, accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Set("fields", "id,name,status,adsets{id,name,status}")
	params.Set("limit", fmt.Sprintf("%d", c.Cfg.Meta.PageLimit))

	endpoint := fmt.Sprintf("%s/%s/act_%s/campaigns?%s",
		c.Cfg.Meta.BaseURL,
		c.Cfg.Meta.Version,
		accountID,
		params.Encode(),
	)

	var campaigns []metadomain.Campaign

	for endpoint != "" {
		var page struct {
			Data   []metadomain.Campaign `json:"data"`
			Paging metadomain.Paging     `json:"paging"`
		}

		if err := c.doGet(ctx, accessToken, endpoint, &page); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
			}).WithError(err).Error("Erro ao buscar campanhas da conta de anúncios")
			return nil, err
		}

		campaigns = append(campaigns, page.Data...)

		endpoint = page.Paging.Next
		if endpoint != "" {
			c.pageDelay(ctx)
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	return campaigns, nil
}
