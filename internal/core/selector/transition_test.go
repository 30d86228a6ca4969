package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pulsetimer/internal/core/model"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		current model.ArmedState
		option  model.PeriodOption
		want    model.ArmedState
	}{
		{"idle arms", model.Idle(), model.Period10s, model.Armed(model.Period10s)},
		{"same option disarms", model.Armed(model.Period15s), model.Period15s, model.Idle()},
		{"other option switches", model.Armed(model.Period10s), model.Period30s, model.Armed(model.Period30s)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transition(tt.current, tt.option))
		})
	}
}

func TestPlanEffects(t *testing.T) {
	assert.Equal(t, Plan{}, PlanEffects(model.Idle(), model.Idle()))
	assert.Equal(t, Plan{}, PlanEffects(model.Armed(model.Period10s), model.Armed(model.Period10s)))
	assert.Equal(t,
		Plan{Setup: true, Option: model.Period15s},
		PlanEffects(model.Idle(), model.Armed(model.Period15s)))
	assert.Equal(t,
		Plan{Teardown: true},
		PlanEffects(model.Armed(model.Period15s), model.Idle()))
	assert.Equal(t,
		Plan{Teardown: true, Setup: true, Option: model.Period30s},
		PlanEffects(model.Armed(model.Period10s), model.Armed(model.Period30s)))
}
