// Package compiler moves and decomposes the opcodes of an ACIR circuit for a proving backend.
//
// The returned TransformationMap allows consumers to map metadata they had about the opcodes of
// the input circuit to the opcodes of the output circuit.
package compiler

import (
	"github.com/PolyhedraZK/acvm-compiler/acir"
	"github.com/PolyhedraZK/acvm-compiler/compiler/optimizers"
	"github.com/PolyhedraZK/acvm-compiler/compiler/transformers"
)

// Compile optimizes c, then splits its expressions so that they fit the expression width of the
// backend. The assert messages of c are relocated to the output circuit: a message is duplicated
// when its opcode was split, and dropped when its opcode was removed.
//
// c is not modified. width must pass width.Validate: a bounded width below
// acir.MinimumExpressionWidth panics. acvm.Compile checks it and returns an error instead.
func Compile(c *acir.Circuit, width acir.ExpressionWidth, opts ...Option) (*acir.Circuit, *TransformationMap) {
	cfg := newConfig(opts)
	log := cfg.log
	cfg.stats.record("input", c)

	optimized, optimizerPositions := optimizers.Optimize(c)
	optimizerPositions.Check(len(c.Opcodes))
	cfg.stats.record("optimize", optimized)
	log.Debug().
		Int("nbOpcodes", len(c.Opcodes)).
		Int("nbOptimized", len(optimized.Opcodes)).
		Msg("optimized circuit")

	// the transformer expects optimized opcodes, the order of the two passes is fixed
	transformed, transformerPositions := transformers.Transform(optimized, width)
	transformerPositions.Check(len(optimized.Opcodes))

	tm := NewTransformationMap(optimizerPositions.Compose(transformerPositions))
	transformed.AssertMessages = transformAssertMessages(c.AssertMessages, tm)
	cfg.stats.record("transform", transformed)

	log.Info().
		Str("width", width.String()).
		Int("nbOpcodes", len(transformed.Opcodes)).
		Int("nbWitnesses", transformed.CurrentWitnessIndex).
		Int("nbAssertMessages", len(transformed.AssertMessages)).
		Msg("compiled")
	return transformed, tm
}

// Optimize only runs the optimizer
func Optimize(c *acir.Circuit, opts ...Option) (*acir.Circuit, *TransformationMap) {
	cfg := newConfig(opts)
	cfg.stats.record("input", c)

	optimized, positions := optimizers.Optimize(c)
	positions.Check(len(c.Opcodes))

	tm := NewTransformationMap(positions)
	optimized.AssertMessages = transformAssertMessages(c.AssertMessages, tm)
	cfg.stats.record("optimize", optimized)
	cfg.log.Info().
		Int("nbOpcodes", len(optimized.Opcodes)).
		Int("nbAssertMessages", len(optimized.AssertMessages)).
		Msg("optimized")
	return optimized, tm
}

// Transform only runs the width transformer
func Transform(c *acir.Circuit, width acir.ExpressionWidth, opts ...Option) (*acir.Circuit, *TransformationMap) {
	cfg := newConfig(opts)
	cfg.stats.record("input", c)

	transformed, positions := transformers.Transform(c, width)
	positions.Check(len(c.Opcodes))

	tm := NewTransformationMap(positions)
	transformed.AssertMessages = transformAssertMessages(c.AssertMessages, tm)
	cfg.stats.record("transform", transformed)
	cfg.log.Info().
		Str("width", width.String()).
		Int("nbOpcodes", len(transformed.Opcodes)).
		Int("nbAssertMessages", len(transformed.AssertMessages)).
		Msg("transformed")
	return transformed, tm
}
