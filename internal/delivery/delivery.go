package delivery

import "context"

// Delivery is an outer surface driving the credential use cases.
type Delivery interface {
	Serve(ctx context.Context) error
}
