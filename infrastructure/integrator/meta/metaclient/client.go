package metaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
)

type Client interface {
	GetCampaignsByAdAccountID(ctx context.Context, accessToken, accountID string) ([]metadomain.Campaign, error)
	GetInsightsByAdAccountID(ctx context.Context, accessToken, accountID string, level metadomain.InsightLevel, since, until time.Time) ([]metadomain.EntityInsight, error)
	GetEntityStatus(ctx context.Context, accessToken, entityID string) (*metadomain.EntityStatus, error)
	UpdateEntityStatus(ctx context.Context, accessToken, entityID, status string) error
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Meta.RequestTimeoutSecs) * time.Second,
		},
	}
}

// doGet executa um GET autenticado e decodifica a resposta, devolvendo o
// envelope de erro da plataforma como *metadomain.APIError
func (c *MetaClient) doGet(ctx context.Context, accessToken, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição para a API do Meta")
		return err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da API do Meta")
		return err
	}

	return nil
}

// doPost executa um POST autenticado com corpo JSON
func (c *MetaClient) doPost(ctx context.Context, accessToken, url string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição para a API do Meta")
		return err
	}
	defer resp.Body.Close()

	if _, err := c.handleResponse(resp); err != nil {
		return err
	}

	return nil
}

// handleResponse lê o corpo e converte envelopes de erro da plataforma em
// *metadomain.APIError em vez de propagar o corpo cru
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return nil, &metadomain.APIError{
			StatusCode: resp.StatusCode,
			Details:    errResp.Error,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &metadomain.APIError{StatusCode: resp.StatusCode}
	}

	return body, nil
}

// pageDelay espera entre páginas consecutivas para evitar throttling da
// plataforma, respeitando o cancelamento do contexto
func (c *MetaClient) pageDelay(ctx context.Context) {
	delay := time.Duration(c.Cfg.Meta.PageDelayMillis) * time.Millisecond

	select {
	case <-time.After(delay):
	case <-ctx.Done():
	}
}
