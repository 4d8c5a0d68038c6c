package reconciling

import (
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

// DecideTarget aplica a política assimétrica de liga/desliga a uma entidade
// e devolve o status alvo e se uma atualização deve ser disparada.
//
// Sem sinal de conversão, o modo ON segura a entidade como está (não ativa
// campanha que nunca converteu), enquanto o modo OFF pausa por precaução.
// Com sinal, ON ativa abaixo do teto de custo e pausa a partir dele; OFF é
// o espelho, pausando a partir do teto e reativando abaixo dele.
//
// A atualização só dispara quando o alvo difere do status atual, então
// passadas repetidas no mesmo estado não geram chamadas à plataforma.
func DecideTarget(mode domain.OnOffMode, cpp domain.CPP, threshold float64, current domain.EntityStatus) (domain.EntityStatus, bool) {
	var target domain.EntityStatus

	switch {
	case cpp.IsNoSignal():
		if mode == domain.ModeOn {
			return current, false
		}
		target = domain.StatusPaused

	case mode == domain.ModeOn:
		if float64(cpp) < threshold {
			target = domain.StatusActive
		} else {
			target = domain.StatusPaused
		}

	default:
		if float64(cpp) >= threshold {
			target = domain.StatusPaused
		} else {
			target = domain.StatusActive
		}
	}

	return target, target != current
}
