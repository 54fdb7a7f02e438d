package scenario

import (
	"github.com/kuzn-ilya/redux-act-typings-tests/internal/action"
	"github.com/kuzn-ilya/redux-act-typings-tests/internal/reducer"
)

// opHandler builds the reducer handler for a declared operation.
// It works with both calling conventions.
func opHandler(op string, value *int64, initial int64) reducer.Handler[int64] {
	return func(state int64, payload, _ any) int64 {
		switch op {
		case OpInc:
			return state + step(value)
		case OpDec:
			return state - step(value)
		case OpReset:
			return initial
		}

		operand, ok := operandOf(value, payload)
		if !ok {
			return state
		}
		switch op {
		case OpAdd:
			return state + operand
		case OpSub:
			return state - operand
		case OpMul:
			return state * operand
		case OpSet:
			return operand
		}
		return state
	}
}

func step(value *int64) int64 {
	if value != nil {
		return *value
	}
	return 1
}

// operandOf prefers the declared value, then the payload.
// In full-action mode the payload argument is the action itself.
func operandOf(value *int64, payload any) (int64, bool) {
	if value != nil {
		return *value, true
	}
	if a, ok := payload.(action.Action); ok {
		payload = a.Payload
	}
	switch p := payload.(type) {
	case int64:
		return p, true
	case int:
		return int64(p), true
	}
	return 0, false
}
