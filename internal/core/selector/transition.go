package selector

import "pulsetimer/internal/core/model"

// Transition returns the state after the user selects option: selecting the
// armed option disarms it, anything else arms option.
func Transition(current model.ArmedState, option model.PeriodOption) model.ArmedState {
	if current.Is(option) {
		return model.Idle()
	}
	return model.Armed(option)
}

// Plan lists the effects needed to move between two states, in execution
// order: teardown first, then setup.
type Plan struct {
	Teardown bool
	Setup    bool
	Option   model.PeriodOption
}

// PlanEffects computes the effects for prev → next. Unchanged states need no
// effects.
func PlanEffects(prev, next model.ArmedState) Plan {
	if prev == next {
		return Plan{}
	}
	plan := Plan{Teardown: prev.IsArmed()}
	if option, ok := next.Option(); ok {
		plan.Setup = true
		plan.Option = option
	}
	return plan
}
