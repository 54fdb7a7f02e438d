package action

// AssignAll assigns every creator to targets.
func AssignAll(creators []*Creator, targets ...Dispatcher) {
	for _, c := range creators {
		c.AssignTo(targets...)
	}
}

// AssignAllMap assigns every creator of a named set to targets.
func AssignAllMap[K comparable](creators map[K]*Creator, targets ...Dispatcher) {
	for _, c := range creators {
		c.AssignTo(targets...)
	}
}

// BindAll binds every creator to targets.
// The result holds the bound creators in input order.
func BindAll(creators []*Creator, targets ...Dispatcher) []*Creator {
	result := make([]*Creator, len(creators))
	for i, c := range creators {
		result[i] = c.BindTo(targets...)
	}
	return result
}

// BindAllMap binds every creator of a named set to targets.
// The result maps the same names to the bound creators.
func BindAllMap[K comparable](creators map[K]*Creator, targets ...Dispatcher) map[K]*Creator {
	result := make(map[K]*Creator, len(creators))
	for name, c := range creators {
		result[name] = c.BindTo(targets...)
	}
	return result
}
