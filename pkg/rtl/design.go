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
package rtl

// CellKind identifies the operation computed by a cell.
type CellKind int

const (
	// CellNot is a bitwise inverter: Y = ~A.
	CellNot CellKind = iota
	// CellAnd is a bitwise conjunction: Y = A & B.
	CellAnd
	// CellOr is a bitwise disjunction: Y = A | B.
	CellOr
	// CellMux is a bitwise multiplexer: Y = S ? B : A.
	CellMux
)

// Cell is a single combinational gate within a design.  All connected
// signals of a cell have the same width, except the single-bit select of a
// multiplexer.
type Cell struct {
	Kind CellKind
	// Operand signals.  B is unused for CellNot; S is only used by CellMux.
	A, B, S SigSpec
	// Output signal.
	Y SigSpec
}

// Driver identifies the cell output driving a given signal bit.
type Driver struct {
	Cell *Cell
	// Bit position within the cell's output.
	Bit int
}

// Design is a flat netlist of wires and combinational cells, standing in for
// the host synthesis framework's module view.
type Design struct {
	wires   map[string]*Wire
	cells   []*Cell
	drivers map[SigBit]Driver
}

// NewDesign constructs a fresh, empty design.
func NewDesign() *Design {
	return &Design{
		wires:   make(map[string]*Wire),
		drivers: make(map[SigBit]Driver),
	}
}

// AddWire creates a new wire with a given name and width.  Wire names must be
// unique within a design.
func (d *Design) AddWire(name string, width int) *Wire {
	if _, ok := d.wires[name]; ok {
		panic("duplicate wire " + name)
	}
	//
	w := &Wire{Name: name, Width: width}
	d.wires[name] = w
	//
	return w
}

// Wire looks up a wire by name.
func (d *Design) Wire(name string) (*Wire, bool) {
	w, ok := d.wires[name]
	return w, ok
}

// AddCell appends a cell to this design, registering its output bits as
// driven by the cell.
func (d *Design) AddCell(cell *Cell) {
	d.cells = append(d.cells, cell)
	//
	for i, bit := range cell.Y {
		if !bit.IsConst() {
			d.drivers[bit] = Driver{cell, i}
		}
	}
}

// Cells returns every cell in this design, in insertion order.
func (d *Design) Cells() []*Cell {
	return d.cells
}

// DriverOf determines the cell output (if any) driving a given bit.
func (d *Design) DriverOf(bit SigBit) (Driver, bool) {
	drv, ok := d.drivers[bit]
	return drv, ok
}
