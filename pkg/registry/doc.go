// Package registry implements the catcher registry: an ordered mapping from
// exception type identifiers to handler functions, with dispatch by ancestry.
//
// Handlers are checked most-recently-registered first, and the first handler
// whose target type matches the exception (exactly or as an ancestor) runs.
// Ordering alone decides priority: a broad handler registered after a narrow
// one shadows it for matching exceptions. Re-registering a target replaces
// its handler but keeps the position of the first registration.
//
// Registries are safe for concurrent use. Handlers run outside the registry
// lock, so a handler may register further catchers or dispatch again; no
// recursion guard exists, and a handler that re-raises an exception matching
// its own target is the caller's responsibility to avoid.
package registry
