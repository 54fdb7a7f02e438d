package reducer

// settings holds the options of a Reducer.
type settings struct {
	// payload selects the handler calling convention.
	payload bool
}

func defaultSettings() settings {
	return settings{payload: true}
}

// Option configures a Reducer.
type Option func(*settings)

// WithPayload selects how handlers are called.
//
// WithPayload(true), the default, passes the action payload and meta as
// separate arguments. WithPayload(false) passes the whole action.Action as
// the payload argument and nil meta. The name follows the historical option
// of the same name, so true does NOT mean "full action".
func WithPayload(payload bool) Option {
	return func(s *settings) {
		s.payload = payload
	}
}
