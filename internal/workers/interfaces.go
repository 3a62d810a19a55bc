// Package workers runs the background jobs of the server.
//
// Each Worker blocks in Run until its context is cancelled; Workers starts
// them all concurrently and waits for every one to return.
package workers

import "context"

// Worker is a background job. Run must return promptly once ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
