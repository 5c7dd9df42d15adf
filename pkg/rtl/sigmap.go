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

// SigMap maps signal bits onto canonical representatives, such that two
// signals which are known to carry the same value map to identical bits.
type SigMap struct {
	forward map[SigBit]SigBit
}

// NewSigMap constructs an empty signal map, under which every signal is its
// own representative.
func NewSigMap() *SigMap {
	return &SigMap{forward: make(map[SigBit]SigBit)}
}

// NewXMuxSigMap constructs a signal map over a given design which
// additionally maps the output of any mux whose A or B operand is fully
// undefined onto the other operand.  This mirrors the "undefined muxes are
// wires" simplification applied before address comparison.
func NewXMuxSigMap(design *Design) *SigMap {
	m := NewSigMap()
	//
	for _, cell := range design.Cells() {
		if cell.Kind != CellMux {
			continue
		}
		//
		sigA := m.MapSig(cell.A)
		sigB := m.MapSig(cell.B)
		//
		if sigA.FullyUndef() {
			m.Add(cell.Y, cell.B)
		} else if sigB.FullyUndef() {
			m.Add(cell.Y, cell.A)
		}
	}
	//
	return m
}

// Add records that every bit of one signal carries the same value as the
// corresponding bit of another.  Subsequent lookups of the former resolve to
// the representative of the latter.
func (m *SigMap) Add(from SigSpec, to SigSpec) {
	if len(from) != len(to) {
		panic("signal width mismatch")
	}
	//
	for i := range from {
		if !from[i].IsConst() {
			m.forward[from[i]] = m.MapBit(to[i])
		}
	}
}

// MapBit resolves a single bit to its canonical representative.
func (m *SigMap) MapBit(bit SigBit) SigBit {
	seen := 0
	//
	for {
		next, ok := m.forward[bit]
		if !ok {
			return bit
		}
		// Guard against accidental cycles.
		if seen++; seen > len(m.forward) {
			return bit
		}
		//
		bit = next
	}
}

// MapSig resolves every bit of a signal to its canonical representative.
func (m *SigMap) MapSig(sig SigSpec) SigSpec {
	res := make(SigSpec, len(sig))
	for i, bit := range sig {
		res[i] = m.MapBit(bit)
	}

	return res
}
