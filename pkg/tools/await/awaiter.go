package await

import "context"

type Awaiter interface {
	// Await blocks until the next event or ctx is done. It reports
	// false when ctx won.
	Await(ctx context.Context) (waited bool)
}
