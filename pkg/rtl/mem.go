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

import "github.com/bits-and-blooms/bitset"

// MemWrPort is a single write port of an abstract memory.
type MemWrPort struct {
	// Clock signal, only meaningful when ClkEnable holds.
	Clk SigSpec
	// True for posedge clocking, false for negedge.
	ClkPolarity bool
	// Whether this port is clocked at all.  Unclocked write ports are
	// asynchronous and cannot be mapped to library primitives.
	ClkEnable bool
	// Per-bit write enable.
	En SigSpec
	// Address and data signals.
	Addr SigSpec
	Data SigSpec
	// This many low address bits are implicitly zero (wide port).
	WideLog2 int
	// Priority holds, for each lower-index write port, whether this port
	// must win on a simultaneous write to the same address.
	Priority *bitset.BitSet
}

// MemRdPort is a single read port of an abstract memory.
type MemRdPort struct {
	// Clock signal, only meaningful when ClkEnable holds.
	Clk SigSpec
	// True for posedge clocking, false for negedge.
	ClkPolarity bool
	// Whether this port is synchronous.  Unclocked read ports are
	// asynchronous (combinational).
	ClkEnable bool
	// Single-bit read enable.
	En SigSpec
	// Address and data signals.
	Addr SigSpec
	Data SigSpec
	// Initial value of the output register, or fully undefined.
	InitValue Const
	// Asynchronous reset signal and value.
	Arst      SigBit
	ArstValue Const
	// Synchronous reset signal and value.
	Srst      SigBit
	SrstValue Const
	// Whether clock enable takes priority over synchronous reset.
	CeOverSrst bool
	// Transparency holds, per write port, whether a simultaneous
	// same-address write must be reflected in this port's read data.
	Transparency *bitset.BitSet
	// CollisionX holds, per write port, whether the result of a
	// simultaneous same-address access is undefined, lifting any
	// transparency requirement.
	CollisionX *bitset.BitSet
	// This many low address bits are implicitly zero (wide port).
	WideLog2 int
}

// MemInit is a chunk of static initial memory contents.
type MemInit struct {
	// Word address the chunk starts at.
	Addr int
	// Concatenated initialization words.
	Data Const
}

// Mem is the abstract view of one memory extracted from a design: an array
// of words together with its read ports, write ports, initialization and
// attributes.
type Mem struct {
	// Module the memory belongs to, and its identifier within it.
	Module string
	ID     string
	// Word width and word count.
	Width int
	Size  int
	// Attribute values attached to the memory.
	Attributes map[string]Value
	//
	WrPorts []MemWrPort
	RdPorts []MemRdPort
	Inits   []MemInit
}

// HasAttribute determines whether a given attribute is attached to this
// memory.
func (m *Mem) HasAttribute(name string) bool {
	_, ok := m.Attributes[name]
	return ok
}

// GetBoolAttribute determines whether a given attribute is attached to this
// memory with the integer value 1.
func (m *Mem) GetBoolAttribute(name string) bool {
	val, ok := m.Attributes[name]
	return ok && !val.IsString() && val.Int() == 1
}
