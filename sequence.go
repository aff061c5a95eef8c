package midway

import "slices"

// Sequence composes an ordered list of handlers into a single handler.
//
// The composed handler runs handlers in declaration order: each handler's
// continuation resumes the next handler in the list, and the continuation of
// the last handler is the `next` the composed handler itself was invoked
// with. Pre-delegation code therefore runs forward through the list and
// post-delegation code runs backward, symmetric around the terminal call.
//
// An empty call composes to the identity handler, which simply invokes its
// continuation. Composition is pure and never fails; handler errors surface
// only when the composed handler runs.
func Sequence(handlers ...Handler) Handler {
	if len(handlers) == 0 {
		return func(ctx *Context, next Next) (Response, error) {
			return next()
		}
	}

	// Snapshot the chain so later mutations of the caller's slice
	// cannot reorder an already-composed handler.
	chain := slices.Clone(handlers)

	return func(ctx *Context, next Next) (Response, error) {
		var run func(i int) (Response, error)
		run = func(i int) (Response, error) {
			if i >= len(chain) {
				return next()
			}
			return ctx.invoke(chain[i], func() (Response, error) {
				return run(i + 1)
			})
		}
		return run(0)
	}
}
