// Package cache provides a small generic, thread-safe LRU cache.
//
// It is used to memoise values that are expensive to build but pure to
// compute, such as compiled regular expressions referenced by rule
// declarations. The cache never changes the observable result of a lookup:
// evicted entries are simply rebuilt by the loader on the next request.
//
// # Usage
//
//	patterns := cache.NewLRU[string, *regexp.Regexp](256)
//
//	re, err := patterns.GetOrLoad(expr, func() (*regexp.Regexp, error) {
//		return regexp.Compile(expr)
//	})
//
// Loader errors are returned to the caller and nothing is stored, so a bad
// key is re-evaluated (and fails again) on every call.
//
// # Thread Safety
//
// All methods are safe for concurrent use. GetOrLoad runs the loader outside
// the lock; two goroutines missing on the same key may both run the loader,
// the last result wins.
package cache
