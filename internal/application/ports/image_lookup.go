package ports

import (
	"context"
)

type ImageLookup interface {
	// LookupImage resolves a query to an image URL. An empty URL with a nil
	// error means the service had no match; workflows treat either outcome
	// as "no image".
	LookupImage(ctx context.Context, query string) (string, error)
}
