package acvm

import (
	"fmt"

	"github.com/PolyhedraZK/acvm-compiler/acir"
	"github.com/PolyhedraZK/acvm-compiler/compiler"
	"github.com/PolyhedraZK/acvm-compiler/debug"
)

// Program is a circuit along with the debug info of its opcodes
type Program struct {
	Circuit *acir.Circuit
	Debug   *debug.Info
}

// CompileResult represents the result of a compilation process.
type CompileResult struct {
	circuit *acir.Circuit
	debug   *debug.Info
	tm      *compiler.TransformationMap
}

// Compile validates the program circuit and compiles it for a backend with the given expression
// width. The assert messages and the debug info are relocated to the compiled opcodes.
func Compile(p *Program, width acir.ExpressionWidth, opts ...compiler.Option) (*CompileResult, error) {
	log := compiler.Logger(opts...)
	if err := width.Validate(); err != nil {
		return nil, err
	}
	if err := acir.Validate(p.Circuit); err != nil {
		log.Err(err).Msg("validating circuit")
		return nil, fmt.Errorf("invalid circuit: %w", err)
	}
	c, tm := compiler.Compile(p.Circuit, width, opts...)

	var info *debug.Info
	if p.Debug != nil {
		info = &debug.Info{Locations: p.Debug.Locations}
		info.UpdateAcir(tm)
	}
	return &CompileResult{circuit: c, debug: info, tm: tm}, nil
}
