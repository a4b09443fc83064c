package switches

// Resolve evaluates sw and returns its plain value, for call sites that only
// want the result of a switch they have just defined.
func Resolve[T any](sw *Switch[T]) (T, error) {
	return sw.Eval()
}

// MustResolve is the panic-on-failure variant of Resolve. An incomplete switch
// fails at the point where it is defined.
//
//	kind := switches.MustResolve(switches.New[string]().
//	    Case(val == "apple", func() string { return "fruit" }).
//	    Default(func() string { return "vegetable" }))
func MustResolve[T any](sw *Switch[T]) T {
	return sw.MustEval()
}
