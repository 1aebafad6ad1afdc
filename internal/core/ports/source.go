// Package ports defines the interfaces between the pipeline core and
// its adapters.
package ports

import "context"

// DatasetSource fetches a remote dataset archive and unpacks it into a
// local directory.
type DatasetSource interface {
	Download(ctx context.Context, dataset string, dir string) error
}
