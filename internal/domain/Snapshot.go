package domain

import (
	"bytes"
	"math"
	"strconv"
)

// EntityStatus espelha exatamente os estados remotos da plataforma de
// anúncios; não existem estados internos adicionais
type EntityStatus string

const (
	StatusActive EntityStatus = "ACTIVE"
	StatusPaused EntityStatus = "PAUSED"
)

// CPP é o custo por ação (spend / conversões) de uma entidade. O valor
// +Inf é o sentinela de "sem sinal" (nenhuma conversão no período) e é
// distinto de custo zero. Como encoding/json rejeita Inf, o sentinela é
// serializado como null e volta como +Inf na leitura.
type CPP float64

// NoSignal é o sentinela de CPP sem conversões
func NoSignal() CPP {
	return CPP(math.Inf(1))
}

// IsNoSignal informa se o valor é o sentinela de "sem conversões"
func (c CPP) IsNoSignal() bool {
	return math.IsInf(float64(c), 1)
}

// Display formata o CPP para mensagens de progresso
func (c CPP) Display() string {
	if c.IsNoSignal() {
		return "Sem conversões"
	}

	return "$" + strconv.FormatFloat(float64(c), 'f', 2, 64)
}

var jsonNull = []byte("null")

func (c CPP) MarshalJSON() ([]byte, error) {
	if c.IsNoSignal() {
		return jsonNull, nil
	}

	return []byte(strconv.FormatFloat(float64(c), 'f', -1, 64)), nil
}

func (c *CPP) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*c = NoSignal()
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}

	*c = CPP(v)
	return nil
}

// AdSetSnapshot é a visão transitória de um conjunto de anúncios dentro
// do snapshot de uma passada
type AdSetSnapshot struct {
	Name   string       `json:"NAME"`
	Status EntityStatus `json:"STATUS"`
	CPP    CPP          `json:"CPP"`
}

// CampaignSnapshot é a visão transitória de uma campanha casada com o
// campaign_code do horário
type CampaignSnapshot struct {
	CampaignName string                   `json:"campaign_name"`
	Status       EntityStatus             `json:"STATUS"`
	CPP          CPP                      `json:"CPP"`
	AdSets       map[string]AdSetSnapshot `json:"ADSETS"`
}

// MatchedCampaignSnapshot é recomputado a cada passada e persistido por
// inteiro em matched_campaign_data; nunca é mesclado campo a campo entre
// passadas.
type MatchedCampaignSnapshot map[string]CampaignSnapshot
