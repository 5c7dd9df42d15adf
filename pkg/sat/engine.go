// Copyright The yosys-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package sat wraps the gini solver behind a small engine which imports the
// combinational cone driving a signal into a boolean circuit, such that
// relationships between signals (e.g. between enables) can be decided by
// satisfiability queries.
package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/zchn/yosys/pkg/rtl"
)

// Engine imports signal bits of one design into a boolean circuit and
// answers satisfiability queries about them.  Imported bits are cached, so
// repeated queries over the same signals stay cheap.
type Engine struct {
	design  *rtl.Design
	circuit *logic.C
	// Circuit literals of already-imported wire bits.
	lits map[rtl.SigBit]z.Lit
	// Bits whose import is in progress, guarding against driver cycles.
	pending map[rtl.SigBit]bool
}

// NewEngine constructs an engine over a given design.
func NewEngine(design *rtl.Design) *Engine {
	return &Engine{
		design:  design,
		circuit: logic.NewC(),
		lits:    make(map[rtl.SigBit]z.Lit),
		pending: make(map[rtl.SigBit]bool),
	}
}

// True returns the constant true literal.
func (e *Engine) True() z.Lit {
	return e.circuit.T
}

// False returns the constant false literal.
func (e *Engine) False() z.Lit {
	return e.circuit.F
}

// ImportSigBit imports a single signal bit, together with the combinational
// cone driving it.  Bits with no known driver become free inputs; undefined
// constant bits become fresh free inputs on every import.
func (e *Engine) ImportSigBit(bit rtl.SigBit) z.Lit {
	if bit.IsConst() {
		switch bit.State {
		case rtl.S0:
			return e.circuit.F
		case rtl.S1:
			return e.circuit.T
		default:
			return e.circuit.Lit()
		}
	}
	//
	if lit, ok := e.lits[bit]; ok {
		return lit
	}
	// Break driver cycles by treating the offending bit as a free input.
	if e.pending[bit] {
		return e.circuit.Lit()
	}
	//
	e.pending[bit] = true
	lit := e.importDriver(bit)
	delete(e.pending, bit)
	//
	e.lits[bit] = lit
	//
	return lit
}

// importDriver builds the circuit node computing a given wire bit.
func (e *Engine) importDriver(bit rtl.SigBit) z.Lit {
	drv, ok := e.design.DriverOf(bit)
	if !ok {
		// Primary input.
		return e.circuit.Lit()
	}
	//
	cell, idx := drv.Cell, drv.Bit
	//
	switch cell.Kind {
	case rtl.CellNot:
		return e.ImportSigBit(cell.A[idx]).Not()
	case rtl.CellAnd:
		return e.circuit.And(e.ImportSigBit(cell.A[idx]), e.ImportSigBit(cell.B[idx]))
	case rtl.CellOr:
		return e.circuit.Or(e.ImportSigBit(cell.A[idx]), e.ImportSigBit(cell.B[idx]))
	case rtl.CellMux:
		sel := e.ImportSigBit(cell.S[0])
		return e.circuit.Choice(sel, e.ImportSigBit(cell.B[idx]), e.ImportSigBit(cell.A[idx]))
	default:
		return e.circuit.Lit()
	}
}

// ImportSig imports every bit of a signal.
func (e *Engine) ImportSig(sig rtl.SigSpec) []z.Lit {
	lits := make([]z.Lit, len(sig))
	for i, bit := range sig {
		lits[i] = e.ImportSigBit(bit)
	}

	return lits
}

// OrReduce disjoins a set of literals.  An empty set reduces to false.
func (e *Engine) OrReduce(lits []z.Lit) z.Lit {
	if len(lits) == 0 {
		return e.circuit.F
	}

	return e.circuit.Ors(lits...)
}

// Solve determines whether the imported circuit admits an assignment making
// every given assumption true.
func (e *Engine) Solve(assumptions ...z.Lit) bool {
	g := gini.New()
	e.circuit.ToCnf(g)
	g.Assume(assumptions...)
	//
	return g.Solve() == 1
}
