package mdlist

// Test hooks (kept separate so instrumentation doesn't clutter logic).
// These are for test instrumentation only and must never block or mutate
// state beyond what the production path already does.
var (
	// locateRevalidateHook runs after the revalidation locate() inside
	// insert/remove, before the pointer surgery it guards.
	locateRevalidateHook func(key uint64)

	// installHook runs immediately before installing a freshly linked node
	// under its parent (insert step 10).
	installHook func(key uint64)

	// spliceHook runs immediately before a remove splices its target out
	// from under the parent (remove step 10).
	spliceHook func(key uint64)
)
