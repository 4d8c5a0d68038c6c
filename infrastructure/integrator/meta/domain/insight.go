package metadomain

import "strconv"

// Action é um par action_type/value das respostas de insights; valores
// numéricos chegam como string
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// EntityInsight é uma linha de insights no nível campaign ou adset
type EntityInsight struct {
	CampaignID string   `json:"campaign_id,omitempty"`
	AdSetID    string   `json:"adset_id,omitempty"`
	Spend      string   `json:"spend"`
	Actions    []Action `json:"actions"`
	DateStart  string   `json:"date_start"`
	DateStop   string   `json:"date_stop"`
}

// EntityID retorna o id da entidade conforme o nível consultado
func (i *EntityInsight) EntityID(level InsightLevel) string {
	if level == LevelAdSet {
		return i.AdSetID
	}
	return i.CampaignID
}

// SpendValue converte o gasto para float64; gasto ausente vale 0
func (i *EntityInsight) SpendValue() float64 {
	if i.Spend == "" {
		return 0
	}

	v, err := strconv.ParseFloat(i.Spend, 64)
	if err != nil {
		return 0
	}

	return v
}

// ActionCount soma o valor da ação de conversão configurada
func (i *EntityInsight) ActionCount(actionType string) float64 {
	for _, action := range i.Actions {
		if action.ActionType != actionType {
			continue
		}

		v, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			return 0
		}

		return v
	}

	return 0
}

// InsightLevel é o nível de agregação dos insights
type InsightLevel string

const (
	LevelCampaign InsightLevel = "campaign"
	LevelAdSet    InsightLevel = "adset"
)
