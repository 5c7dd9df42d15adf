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

// Wire is a named bundle of signal bits within a design.
type Wire struct {
	// Name of this wire within its module.
	Name string
	// Number of bits in this wire.
	Width int
}

// SigBit identifies a single signal bit: either one bit of a wire, or a
// constant state.  SigBits are comparable with ==, which is relied upon for
// signal identity checks and map keys.
type SigBit struct {
	// Wire this bit belongs to, or nil for a constant bit.
	Wire *Wire
	// Offset of this bit within the wire.
	Offset int
	// Constant state, only meaningful when Wire is nil.
	State State
}

// ConstBit constructs a constant signal bit.
func ConstBit(s State) SigBit {
	return SigBit{State: s}
}

// IsConst determines whether this bit is a constant.
func (b SigBit) IsConst() bool {
	return b.Wire == nil
}

// SigSpec is an ordered sequence of signal bits, least significant first.
type SigSpec []SigBit

// WireSig constructs a signal covering every bit of a given wire.
func WireSig(w *Wire) SigSpec {
	sig := make(SigSpec, w.Width)
	for i := range sig {
		sig[i] = SigBit{Wire: w, Offset: i}
	}

	return sig
}

// ConstSig constructs a signal holding a given constant.
func ConstSig(c Const) SigSpec {
	sig := make(SigSpec, len(c))
	for i, s := range c {
		sig[i] = ConstBit(s)
	}

	return sig
}

// RepeatBit constructs a signal repeating a given bit a number of times.
func RepeatBit(b SigBit, n int) SigSpec {
	sig := make(SigSpec, n)
	for i := range sig {
		sig[i] = b
	}

	return sig
}

// Equal determines whether two signals are structurally identical.
func (s SigSpec) Equal(o SigSpec) bool {
	if len(s) != len(o) {
		return false
	}

	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// IsConstOne determines whether this signal is the single constant one bit.
func (s SigSpec) IsConstOne() bool {
	return len(s) == 1 && s[0] == ConstBit(S1)
}

// FullyUndef determines whether every bit of this signal is a constant
// undefined bit.
func (s SigSpec) FullyUndef() bool {
	for _, bit := range s {
		if bit != ConstBit(Sx) {
			return false
		}
	}

	return true
}

// ExtractEnd returns the tail of this signal starting at a given bit offset.
// Offsets beyond the width of the signal yield an empty signal.
func (s SigSpec) ExtractEnd(offset int) SigSpec {
	if offset >= len(s) {
		return SigSpec{}
	}

	return s[offset:]
}

// ExtendU0 zero-extends this signal to a given width, returning a fresh
// signal.  Signals already at least that wide are returned unchanged.
func (s SigSpec) ExtendU0(width int) SigSpec {
	if len(s) >= width {
		return s
	}
	//
	sig := make(SigSpec, width)
	copy(sig, s)
	//
	for i := len(s); i < width; i++ {
		sig[i] = ConstBit(S0)
	}
	//
	return sig
}
