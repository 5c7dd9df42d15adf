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
package memmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zchn/yosys/pkg/ramlib"
	"github.com/zchn/yosys/pkg/rtl"
)

func TestApplyOpts(t *testing.T) {
	dst := ramlib.Options{"A": rtl.IntValue(1)}
	// Inserting a fresh binding succeeds.
	assert.True(t, applyOpts(dst, ramlib.Options{"B": rtl.StringValue("x")}))
	assert.Equal(t, rtl.StringValue("x"), dst["B"])
	// Re-applying an identical binding succeeds.
	assert.True(t, applyOpts(dst, ramlib.Options{"A": rtl.IntValue(1)}))
	// A disagreeing binding fails.
	assert.False(t, applyOpts(dst, ramlib.Options{"A": rtl.IntValue(2)}))
	assert.False(t, applyOpts(dst, ramlib.Options{"B": rtl.IntValue(1)}))
}

func TestOptsApplied(t *testing.T) {
	dst := ramlib.Options{"A": rtl.IntValue(1), "B": rtl.StringValue("x")}
	//
	assert.True(t, optsApplied(dst, ramlib.Options{}))
	assert.True(t, optsApplied(dst, ramlib.Options{"A": rtl.IntValue(1)}))
	assert.False(t, optsApplied(dst, ramlib.Options{"A": rtl.IntValue(2)}))
	assert.False(t, optsApplied(dst, ramlib.Options{"C": rtl.IntValue(1)}))
}

// Portoptions of a merged read port route to the paired write port.
func TestApplyRdPortOpts_Shared(t *testing.T) {
	cfg := newMemConfig(0)
	cfg.WrPorts = []WrPortConfig{{RdPort: 0, PortOpts: make(ramlib.Options)}}
	cfg.RdPorts = []RdPortConfig{{WrPort: 0, PortOpts: make(ramlib.Options)}}
	//
	cap := ramlib.Capability[int]{
		Val:      0,
		Opts:     ramlib.Options{"G": rtl.IntValue(1)},
		PortOpts: ramlib.Options{"P": rtl.IntValue(2)},
	}
	//
	require.True(t, applyRdPortOpts(&cfg, 0, cap))
	assert.Equal(t, rtl.IntValue(1), cfg.Opts["G"])
	assert.Equal(t, rtl.IntValue(2), cfg.WrPorts[0].PortOpts["P"])
	assert.Empty(t, cfg.RdPorts[0].PortOpts)
	assert.True(t, rdPortOptsApplied(&cfg, 0, cap))
}

func TestApplyClock(t *testing.T) {
	clk := rtl.SigSpec{rtl.SigBit{Wire: &rtl.Wire{Name: "clk", Width: 1}}}
	clk2 := rtl.SigSpec{rtl.SigBit{Wire: &rtl.Wire{Name: "clk2", Width: 1}}}
	//
	cfg := newMemConfig(0)
	// Unnamed clocks bind nothing.
	assert.True(t, applyClock(&cfg, ramlib.ClockDef{Kind: ramlib.ClkAnyedge}, clk, true))
	assert.Empty(t, cfg.ClocksAnyedge)
	// Named anyedge clocks record signal and polarity, exactly once.
	def := ramlib.ClockDef{Kind: ramlib.ClkAnyedge, Name: "CLK"}
	assert.True(t, applyClock(&cfg, def, clk, true))
	assert.True(t, applyClock(&cfg, def, clk, true))
	assert.False(t, applyClock(&cfg, def, clk, false))
	assert.False(t, applyClock(&cfg, def, clk2, true))
	// Pos/negedge clocks record the inversion flag instead.
	posdef := ramlib.ClockDef{Kind: ramlib.ClkPosedge, Name: "PCLK"}
	negdef := ramlib.ClockDef{Kind: ramlib.ClkNegedge, Name: "PCLK"}
	assert.True(t, applyClock(&cfg, posdef, clk, true))
	assert.False(t, cfg.ClocksPnedge["PCLK"].Flag)
	// A negedge def with a negedge source also needs no inversion, and
	// agrees with the posedge binding of the same domain.
	assert.True(t, applyClock(&cfg, negdef, clk, false))
	assert.False(t, applyClock(&cfg, negdef, clk, true))
}

func TestApplyRstVal(t *testing.T) {
	zeros, _ := rtl.ParseConst("00x0")
	ones, _ := rtl.ParseConst("0010")
	//
	pcfg := RdPortConfig{ResetVals: make(map[string]rtl.Const)}
	// None never matches.
	assert.False(t, applyRstVal(&pcfg, ramlib.ResetValDef{ValKind: ramlib.RstValNone}, zeros))
	// Zero admits values without set bits only.
	zdef := ramlib.ResetValDef{ValKind: ramlib.RstValZero}
	assert.True(t, applyRstVal(&pcfg, zdef, zeros))
	assert.False(t, applyRstVal(&pcfg, zdef, ones))
	// Named slots bind once and must agree afterwards.
	ndef := ramlib.ResetValDef{ValKind: ramlib.RstValNamed, Name: "RV"}
	assert.True(t, applyRstVal(&pcfg, ndef, ones))
	assert.True(t, applyRstVal(&pcfg, ndef, ones))
	assert.False(t, applyRstVal(&pcfg, ndef, zeros))
}

// Cloned configurations share no mutable state with their predecessor.
func TestMemConfigClone(t *testing.T) {
	cfg := newMemConfig(3)
	cfg.Opts["A"] = rtl.IntValue(1)
	cfg.WrPorts = []WrPortConfig{{RdPort: -1, PortOpts: make(ramlib.Options), EmuPrio: []int{1}}}
	cfg.RdPorts = []RdPortConfig{{
		WrPort:    -1,
		PortOpts:  make(ramlib.Options),
		ResetVals: map[string]rtl.Const{"RV": {rtl.S1}},
		EmuTrans:  []int{0},
	}}
	cfg.ClocksAnyedge["CLK"] = ClockBinding{rtl.SigSpec{rtl.ConstBit(rtl.S0)}, true}
	//
	clone := cfg.Clone()
	clone.Opts["B"] = rtl.IntValue(2)
	clone.WrPorts[0].EmuPrio = append(clone.WrPorts[0].EmuPrio, 2)
	clone.RdPorts[0].ResetVals["RV2"] = rtl.Const{rtl.S0}
	clone.ClocksAnyedge["CLK2"] = ClockBinding{rtl.SigSpec{rtl.ConstBit(rtl.S1)}, false}
	//
	assert.NotContains(t, cfg.Opts, "B")
	assert.Equal(t, []int{1}, cfg.WrPorts[0].EmuPrio)
	assert.NotContains(t, cfg.RdPorts[0].ResetVals, "RV2")
	assert.NotContains(t, cfg.ClocksAnyedge, "CLK2")
	assert.Equal(t, 3, clone.RamDef)
}
