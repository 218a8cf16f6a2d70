package txlog

// Test hooks (kept separate so instrumentation doesn't clutter logic).
var (
	// searchStepHook is invoked once per lane visited by search, with the
	// arena index reached on that lane (nilIndex if none yet).
	searchStepHook func(level int, node int32)
)
