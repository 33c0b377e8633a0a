// Package benchmark times batch scoring over synthetic meals.
//
// Run generates a reproducible set of meals from a seed, scores it with a
// parallel engine and with a sequential loop, and reports elapsed times,
// the average score, heap allocation and process CPU/RSS deltas. Process
// statistics come from /proc and are omitted where it is unavailable.
//
//	report, err := benchmark.Run(ctx, benchmark.Options{Count: 10000, Seed: 42})
//	if err != nil {
//		return err
//	}
//	fmt.Print(report.Summary())
package benchmark
