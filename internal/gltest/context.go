// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gltest

// Context is a host context whose error state is set by the test.
type Context struct {
	Error error
	// Queries counts calls to Err.
	Queries int
}

// Err implements glarea.Context.
func (c *Context) Err() error {
	c.Queries++
	return c.Error
}
