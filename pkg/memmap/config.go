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
	"github.com/zchn/yosys/pkg/ramlib"
	"github.com/zchn/yosys/pkg/rtl"
)

// WrPortConfig records the mapping decisions made for one source write port.
type WrPortConfig struct {
	// Index of the source read port this port is merged with, or -1.
	RdPort int
	// Index of the port group within the RAM definition.
	PortDef int
	// Already-decided port option settings.
	PortOpts ramlib.Options
	// Emulate priority over these source write ports externally.
	EmuPrio []int
	// Chosen width for this port.
	Width int
	// Chosen byte-enable unit width for this port.
	WrBE int
}

// RdPortConfig records the mapping decisions made for one source read port.
type RdPortConfig struct {
	// Index of the source write port this port is merged with, or -1.
	WrPort int
	// Index of the port group within the RAM definition.
	PortDef int
	// Already-decided port option settings.  Unused when WrPort is set:
	// the write port's options govern then.
	PortOpts ramlib.Options
	// Values bound to named reset-value slots.
	ResetVals map[string]rtl.Const
	// This is a sync port mapped onto an async primitive port; an output
	// register is synthesized.  Exclusive with the remaining flags.
	EmuSync bool
	// Emulate the enable / async reset / sync reset / init circuitry.
	EmuEn   bool
	EmuArst bool
	EmuSrst bool
	EmuInit bool
	// Emulate the relative priority of enable and sync reset.
	EmuSrstEnPrio bool
	// Emulate transparency with these source write ports externally.
	EmuTrans []int
	// Chosen width for this port.
	Width int
}

// ClockBinding is the resolution of a named clock domain: the bound clock
// signal, plus either the shared polarity (anyedge domains) or the
// needs-inversion flag (pos/negedge domains).
type ClockBinding struct {
	Clk  rtl.SigSpec
	Flag bool
}

// Equal determines whether two bindings resolve to the same clock.
func (b ClockBinding) Equal(o ClockBinding) bool {
	return b.Flag == o.Flag && b.Clk.Equal(o.Clk)
}

// SwizzleBit places one source data bit within the target geometry.
type SwizzleBit struct {
	// Source bit index, or -1 for an unused target bit.
	SrcBit int
	D2WIdx int
	D2AIdx int
}

// MemConfig is one still-feasible placement of a memory into one RAM
// definition.  Configurations reference the immutable library by index and
// are cloned cheaply as the planner splits them over capability choices.
type MemConfig struct {
	// Index of the RAM definition within the library.
	RamDef int
	// Already-decided option settings.
	Opts ramlib.Options
	// Port assignments, indexed by source port index.
	WrPorts []WrPortConfig
	RdPorts []RdPortConfig
	// Resolutions of named clock domains, anyedge and pos/negedge kept
	// apart (the library forbids sharing a name across the two).
	ClocksAnyedge map[string]ClockBinding
	ClocksPnedge  map[string]ClockBinding
	// Chosen geometry, filled in by a later pass.
	UnitABits     int
	UnitDBits     int
	BaseWidthLog2 int
	D2WLog2       int
	MultD         int
	D2AFactor     int
	Swizzle       []SwizzleBit
}

// newMemConfig seeds a configuration for a given RAM definition.
func newMemConfig(ramDef int) MemConfig {
	return MemConfig{
		RamDef:        ramDef,
		Opts:          make(ramlib.Options),
		ClocksAnyedge: make(map[string]ClockBinding),
		ClocksPnedge:  make(map[string]ClockBinding),
	}
}

// Clone produces an independent deep copy of this configuration, such that
// bindings can be applied tentatively and discarded on disagreement.
func (c *MemConfig) Clone() MemConfig {
	res := *c
	res.Opts = c.Opts.Clone()
	//
	res.WrPorts = make([]WrPortConfig, len(c.WrPorts))
	for i := range c.WrPorts {
		res.WrPorts[i] = c.WrPorts[i].clone()
	}
	//
	res.RdPorts = make([]RdPortConfig, len(c.RdPorts))
	for i := range c.RdPorts {
		res.RdPorts[i] = c.RdPorts[i].clone()
	}
	//
	res.ClocksAnyedge = cloneClocks(c.ClocksAnyedge)
	res.ClocksPnedge = cloneClocks(c.ClocksPnedge)
	res.Swizzle = append([]SwizzleBit(nil), c.Swizzle...)
	//
	return res
}

func (c *WrPortConfig) clone() WrPortConfig {
	res := *c
	res.PortOpts = c.PortOpts.Clone()
	res.EmuPrio = append([]int(nil), c.EmuPrio...)
	//
	return res
}

func (c *RdPortConfig) clone() RdPortConfig {
	res := *c
	res.PortOpts = c.PortOpts.Clone()
	res.EmuTrans = append([]int(nil), c.EmuTrans...)
	//
	res.ResetVals = make(map[string]rtl.Const, len(c.ResetVals))
	for name, val := range c.ResetVals {
		res.ResetVals[name] = val
	}
	//
	return res
}

func cloneClocks(clocks map[string]ClockBinding) map[string]ClockBinding {
	res := make(map[string]ClockBinding, len(clocks))
	for name, binding := range clocks {
		res[name] = binding
	}

	return res
}

// applyClock binds a source clock to a clock capability.  Unnamed clocks
// always succeed without recording anything; named clocks either establish
// the domain's binding or must agree with it exactly.
func applyClock(cfg *MemConfig, def ramlib.ClockDef, clk rtl.SigSpec, polarity bool) bool {
	if def.Name == "" {
		return true
	}
	//
	if def.Kind == ramlib.ClkAnyedge {
		binding := ClockBinding{clk, polarity}
		if have, ok := cfg.ClocksAnyedge[def.Name]; ok {
			return have.Equal(binding)
		}
		//
		cfg.ClocksAnyedge[def.Name] = binding
		//
		return true
	}
	// For a fixed-edge clock input, record whether an inverter is needed.
	flip := polarity != (def.Kind == ramlib.ClkPosedge)
	binding := ClockBinding{clk, flip}
	//
	if have, ok := cfg.ClocksPnedge[def.Name]; ok {
		return have.Equal(binding)
	}
	//
	cfg.ClocksPnedge[def.Name] = binding
	//
	return true
}

// applyRstVal binds a source reset (or init) value to a reset-value
// capability.  Zero-kind capabilities admit any value without set bits;
// named slots either bind or must agree exactly.
func applyRstVal(pcfg *RdPortConfig, def ramlib.ResetValDef, val rtl.Const) bool {
	switch def.ValKind {
	case ramlib.RstValNone:
		return false
	case ramlib.RstValZero:
		return !val.HasOne()
	default:
		if have, ok := pcfg.ResetVals[def.Name]; ok {
			return have.Equal(val)
		}
		//
		pcfg.ResetVals[def.Name] = val
		//
		return true
	}
}
