// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package webgpu

import (
	"encoding/binary"
	"log/slog"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glarea"
)

// compileStage compiles one WGSL stage to SPIR-V and wraps it in a shader
// module. On failure the diagnostic is logged and returned as a
// *glarea.CompileError, and no module is left behind.
func compileStage(device hal.Device, log *slog.Logger, stage glarea.Stage, src string) (hal.ShaderModule, error) {
	words, err := compileSPIRV(src)
	if err != nil {
		log.Warn("glarea: compile failure", "stage", stage.String(), "log", err.Error())
		return nil, &glarea.CompileError{Stage: stage, Log: err.Error()}
	}

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "glarea_" + stage.String(),
		Source: hal.ShaderSource{SPIRV: words},
	})
	if err != nil {
		log.Warn("glarea: compile failure", "stage", stage.String(), "log", err.Error())
		return nil, &glarea.CompileError{Stage: stage, Log: err.Error()}
	}
	log.Debug("glarea: shader compiled", "stage", stage.String(), "words", len(words))
	return module, nil
}

// compileSPIRV runs naga over src and returns the module as 32-bit
// little-endian SPIR-V words.
func compileSPIRV(src string) ([]uint32, error) {
	if src == "" {
		return nil, errEmptySource
	}
	code, err := naga.Compile(src)
	if err != nil {
		return nil, err
	}
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}
	return words, nil
}
