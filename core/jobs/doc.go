// Package jobs runs synchronization work in the background.
//
// A Runner starts each submitted function in its own goroutine and tracks
// it through pending, running, succeeded and failed. Submissions carrying
// the same idempotency key while a job is still active are coalesced into
// that job, so a manual trigger racing the scheduler does not start a
// second run.
//
// Finished jobs are kept in a bounded history and can be listed or awaited.
//
// # Usage
//
//	runner := jobs.NewRunner(log, jobs.DefaultHistory)
//	job, started := runner.Submit("eox-sync", "eox-sync", func(ctx context.Context) (any, error) {
//	    return orchestrator.Run(ctx, cfg, trigger), nil
//	})
//	job, err := runner.Wait(ctx, job.ID)
package jobs
