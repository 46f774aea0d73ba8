package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptedAgentPolicy(t *testing.T) {
	tests := []struct {
		name   string
		score  int
		others []int
		want   Action
	}{
		{"low score, opponent showing ten", 12, []int{10, 2, 3}, Draw},
		{"score at limit still draws", 16, []int{4, 11}, Draw},
		{"score above limit passes", 17, []int{19, 20, 10}, Pass},
		{"nobody showing ten", 5, []int{9, 9, 9}, Pass},
		{"no opponents", 5, nil, Pass},
		{"busted player passes", 25, []int{15}, Pass},
	}

	agent := NewScriptedAgent()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := agent.MakeDecision(View{Score: tt.score, Others: tt.others})
			assert.Equal(t, tt.want, decision.Action)
			assert.NotEmpty(t, decision.Reasoning)
		})
	}
}

func TestScriptedAgentCustomThresholds(t *testing.T) {
	agent := &ScriptedAgent{DrawLimit: 18, VisibleThreshold: 5}
	assert.Equal(t, Draw, agent.MakeDecision(View{Score: 18, Others: []int{5}}).Action)
	assert.Equal(t, Pass, agent.MakeDecision(View{Score: 19, Others: []int{5}}).Action)
	assert.Equal(t, Pass, agent.MakeDecision(View{Score: 10, Others: []int{4}}).Action)
}

func TestViewHighestOther(t *testing.T) {
	assert.Equal(t, 0, View{}.HighestOther())
	assert.Equal(t, 14, View{Others: []int{3, 14, 9}}.HighestOther())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "draw", Draw.String())
	assert.Equal(t, "pass", Pass.String())
	assert.Equal(t, "unknown", Action(9).String())
}
