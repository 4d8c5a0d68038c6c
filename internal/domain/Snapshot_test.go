package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPP_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		cpp      CPP
		expected string
	}{
		{
			name:     "Valor normal serializa como número",
			cpp:      CPP(7.5),
			expected: "7.5",
		},
		{
			name:     "Custo zero serializa como zero, não como null",
			cpp:      CPP(0),
			expected: "0",
		},
		{
			name:     "Sentinela sem sinal serializa como null",
			cpp:      NoSignal(),
			expected: "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.cpp)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(raw))

			var back CPP
			require.NoError(t, json.Unmarshal(raw, &back))

			if tt.cpp.IsNoSignal() {
				assert.True(t, back.IsNoSignal())
			} else {
				assert.Equal(t, tt.cpp, back)
			}
		})
	}
}

func TestCPP_SnapshotSerialization(t *testing.T) {
	snapshot := MatchedCampaignSnapshot{
		"c1": {
			CampaignName: "Summer-SALE_2024",
			Status:       StatusActive,
			CPP:          CPP(7.5),
			AdSets: map[string]AdSetSnapshot{
				"a1": {Name: "Lookalike", Status: StatusPaused, CPP: NoSignal()},
			},
		},
	}

	raw, err := json.Marshal(snapshot)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"c1": {
			"campaign_name": "Summer-SALE_2024",
			"STATUS": "ACTIVE",
			"CPP": 7.5,
			"ADSETS": {
				"a1": {"NAME": "Lookalike", "STATUS": "PAUSED", "CPP": null}
			}
		}
	}`, string(raw))

	var back MatchedCampaignSnapshot
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back["c1"].AdSets["a1"].CPP.IsNoSignal())
	assert.Equal(t, CPP(7.5), back["c1"].CPP)
}

func TestCPP_Display(t *testing.T) {
	assert.Equal(t, "$7.50", CPP(7.5).Display())
	assert.Equal(t, "$0.00", CPP(0).Display())
	assert.Equal(t, "Sem conversões", NoSignal().Display())
}

func TestCPP_ZeroIsNotNoSignal(t *testing.T) {
	assert.False(t, CPP(0).IsNoSignal())
	assert.True(t, NoSignal().IsNoSignal())
}
