package reconciling

import (
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"github.com/vfg2006/ads-autopilot-api/pkg/utils"
)

// ComputeCPP calcula o custo por conversão de uma entidade, arredondado em
// duas casas. Sem conversão registrada o custo é considerado infinito, o
// sentinela de "sem sinal".
func ComputeCPP(spend, conversions float64) domain.CPP {
	if conversions <= 0 {
		return domain.NoSignal()
	}

	return domain.CPP(utils.RoundWithTwoDecimalPlace(spend / conversions))
}

// MergeWindows combina o custo da janela de hoje com o de ontem. A janela
// de hoje prevalece; ontem só entra quando hoje ainda não tem sinal.
func MergeWindows(today, yesterday domain.CPP) domain.CPP {
	if !today.IsNoSignal() {
		return today
	}

	return yesterday
}
