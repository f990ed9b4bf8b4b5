// Package cache provides the least-recently-used cache behind the glyph
// run cache.
//
//	c := cache.New[string, *Run](256)
//	c.OnEvict(func(key string, run *Run) { run.Release() })
//	run := c.GetOrCreate("label", render)
//
// Cache is safe for concurrent use so one text cache can serve several
// canvases.
package cache
