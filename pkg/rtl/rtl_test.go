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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConst(t *testing.T) {
	c, ok := ParseConst("10x0")
	require.True(t, ok)
	assert.Equal(t, Const{S0, Sx, S0, S1}, c)
	assert.Equal(t, "10x0", c.String())
	assert.True(t, c.HasOne())
	assert.False(t, c.FullyUndef())
	//
	assert.True(t, UndefConst(4).FullyUndef())
	assert.False(t, ZeroConst(4).HasOne())
	//
	_, ok = ParseConst("012")
	assert.False(t, ok)
}

func TestSigSpec(t *testing.T) {
	w := &Wire{Name: "w", Width: 4}
	sig := WireSig(w)
	//
	assert.True(t, sig.Equal(WireSig(w)))
	assert.False(t, sig.Equal(sig.ExtractEnd(1)))
	assert.Len(t, sig.ExtractEnd(1), 3)
	assert.Empty(t, sig.ExtractEnd(7))
	// Zero extension appends constant zeros.
	ext := sig.ExtendU0(6)
	require.Len(t, ext, 6)
	assert.Equal(t, ConstBit(S0), ext[5])
	//
	assert.True(t, SigSpec{ConstBit(S1)}.IsConstOne())
	assert.False(t, SigSpec{ConstBit(S0)}.IsConstOne())
	assert.False(t, WireSig(&Wire{Name: "x", Width: 1}).IsConstOne())
	assert.True(t, ConstSig(UndefConst(3)).FullyUndef())
}

func TestSigMap_Basic(t *testing.T) {
	a := WireSig(&Wire{Name: "a", Width: 2})
	b := WireSig(&Wire{Name: "b", Width: 2})
	c := WireSig(&Wire{Name: "c", Width: 2})
	//
	m := NewSigMap()
	m.Add(b, a)
	m.Add(c, b)
	// Chained aliases resolve to the representative.
	assert.True(t, m.MapSig(c).Equal(a))
	assert.True(t, m.MapSig(a).Equal(a))
}

func TestXMuxSigMap(t *testing.T) {
	design := NewDesign()
	addr := design.AddWire("addr", 4)
	muxed := design.AddWire("muxed", 4)
	sel := design.AddWire("sel", 1)
	//
	design.AddCell(&Cell{
		Kind: CellMux,
		A:    WireSig(addr),
		B:    ConstSig(UndefConst(4)),
		S:    WireSig(sel),
		Y:    WireSig(muxed),
	})
	//
	m := NewXMuxSigMap(design)
	assert.True(t, m.MapSig(WireSig(muxed)).Equal(WireSig(addr)))
	// A mux with two defined inputs maps nothing.
	other := design.AddWire("other", 4)
	out := design.AddWire("out", 4)
	design.AddCell(&Cell{
		Kind: CellMux,
		A:    WireSig(addr),
		B:    WireSig(other),
		S:    WireSig(sel),
		Y:    WireSig(out),
	})
	//
	m = NewXMuxSigMap(design)
	assert.True(t, m.MapSig(WireSig(out)).Equal(WireSig(out)))
}

func TestDesignDrivers(t *testing.T) {
	design := NewDesign()
	a := design.AddWire("a", 2)
	y := design.AddWire("y", 2)
	cell := &Cell{Kind: CellNot, A: WireSig(a), Y: WireSig(y)}
	design.AddCell(cell)
	//
	drv, ok := design.DriverOf(WireSig(y)[1])
	require.True(t, ok)
	assert.Equal(t, cell, drv.Cell)
	assert.Equal(t, 1, drv.Bit)
	//
	_, ok = design.DriverOf(WireSig(a)[0])
	assert.False(t, ok)
}
