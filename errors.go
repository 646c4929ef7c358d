// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glarea

import (
	"errors"
	"fmt"
)

// Common errors. CompileError and LinkError match them with errors.Is.
var (
	// ErrCompile is matched by every *CompileError.
	ErrCompile = errors.New("glarea: shader compile failed")

	// ErrLink is matched by every *LinkError.
	ErrLink = errors.New("glarea: program link failed")
)

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Stage Stage
	// Log is the driver's info log for the failed stage.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("glarea: compile failure in %s shader: %s", e.Stage, e.Log)
}

func (e *CompileError) Is(target error) bool { return target == ErrCompile }

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("glarea: linking failure: %s", e.Log)
}

func (e *LinkError) Is(target error) bool { return target == ErrLink }
