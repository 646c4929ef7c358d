// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package host holds what the window hosts share: the glarea.Context they
// hand to a Surface and the entry-point loading step that runs on realize.
package host

import (
	"sync"

	"github.com/gogpu/glarea/gl"
	"github.com/gogpu/glarea/gl/glimpl"
)

// Context is a glarea.Context backed by a host error query and a sticky
// error recorded by the host itself, such as a failed entry-point load or a
// toolkit error callback.
type Context struct {
	query func() error

	mu  sync.Mutex
	err error
}

// NewContext returns a Context that consults query on every Err. A nil
// query reports only recorded errors.
func NewContext(query func() error) *Context {
	return &Context{query: query}
}

// Err returns the recorded error, or else the result of the query.
func (c *Context) Err() error {
	c.mu.Lock()
	err := c.err
	c.mu.Unlock()
	if err != nil {
		return err
	}
	if c.query != nil {
		return c.query()
	}
	return nil
}

// Fail records err. The first recorded error is kept until Reset.
func (c *Context) Fail(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	if c.err == nil {
		c.err = err
	}
	c.mu.Unlock()
}

// Reset clears the recorded error, for a host that creates a new context.
func (c *Context) Reset() {
	c.mu.Lock()
	c.err = nil
	c.mu.Unlock()
}

// Loader loads GL entry points for the current context.
type Loader func() (gl.Functions, error)

// DefaultLoader loads the entry points through go-gl.
func DefaultLoader() (gl.Functions, error) {
	return glimpl.Init()
}

// Load runs load with the context current and records a failure on c.
// It reports whether the entry points are usable.
func (c *Context) Load(load Loader) bool {
	if _, err := load(); err != nil {
		c.Fail(err)
		return false
	}
	return true
}
