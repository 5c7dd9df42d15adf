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

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zchn/yosys/pkg/ramlib"
	"github.com/zchn/yosys/pkg/rtl"
	"github.com/zchn/yosys/pkg/util/source"
)

// testLibrary parses a library text under a given set of defines.
func testLibrary(t *testing.T, text string, defines ...string) *ramlib.Library {
	t.Helper()
	//
	lib := ramlib.NewLibrary(defines)
	err := ramlib.Parse(source.NewSourceFile("test.ramlib", []byte(text)), lib)
	require.Nil(t, err)
	//
	return lib
}

// memBuilder assembles a test memory over a fresh design.
type memBuilder struct {
	design *rtl.Design
	mem    rtl.Mem
	clk    rtl.SigSpec
	addr   rtl.SigSpec
}

func newMemBuilder(width int, abits int) *memBuilder {
	b := &memBuilder{design: rtl.NewDesign()}
	b.mem = rtl.Mem{
		Module:     "top",
		ID:         "mem",
		Width:      width,
		Size:       1 << abits,
		Attributes: make(map[string]rtl.Value),
	}
	b.clk = rtl.WireSig(b.design.AddWire("clk", 1))
	b.addr = rtl.WireSig(b.design.AddWire("addr", abits))
	//
	return b
}

// addWrPort appends a sync write port with a given enable, clocked by the
// shared clock and address.
func (b *memBuilder) addWrPort(en rtl.SigSpec) *rtl.MemWrPort {
	b.mem.WrPorts = append(b.mem.WrPorts, rtl.MemWrPort{
		Clk:         b.clk,
		ClkPolarity: true,
		ClkEnable:   true,
		En:          en,
		Addr:        b.addr,
		Data:        rtl.ConstSig(rtl.UndefConst(b.mem.Width)),
		Priority:    bitset.New(8),
	})
	//
	return &b.mem.WrPorts[len(b.mem.WrPorts)-1]
}

// addRdPort appends a sync read port with a given enable, clocked by the
// shared clock and address.
func (b *memBuilder) addRdPort(en rtl.SigSpec) *rtl.MemRdPort {
	b.mem.RdPorts = append(b.mem.RdPorts, rtl.MemRdPort{
		Clk:          b.clk,
		ClkPolarity:  true,
		ClkEnable:    true,
		En:           en,
		Addr:         b.addr,
		Data:         rtl.ConstSig(rtl.UndefConst(b.mem.Width)),
		InitValue:    rtl.UndefConst(b.mem.Width),
		Arst:         rtl.ConstBit(rtl.S0),
		ArstValue:    rtl.UndefConst(b.mem.Width),
		Srst:         rtl.ConstBit(rtl.S0),
		SrstValue:    rtl.UndefConst(b.mem.Width),
		Transparency: bitset.New(8),
		CollisionX:   bitset.New(8),
	})
	//
	return &b.mem.RdPorts[len(b.mem.RdPorts)-1]
}

func (b *memBuilder) plan(t *testing.T, lib *ramlib.Library) *Mapping {
	t.Helper()
	//
	mapping, err := MapMemory(NewWorker(b.design), &b.mem, lib)
	require.NoError(t, err)
	//
	return mapping
}

func constOne() rtl.SigSpec {
	return rtl.SigSpec{rtl.ConstBit(rtl.S1)}
}

// A simple single-port sync RAM maps onto a shared srsw port with no
// emulation at all.
func TestMapping_SimpleSharedPort(t *testing.T) {
	lib := testLibrary(t, `
		ram block $BRAM {
			dims 10 8;
			port srsw "A" {
				width 8;
				rden any;
				wrtrans self new;
			}
		}
	`)
	//
	b := newMemBuilder(8, 10)
	b.addWrPort(rtl.RepeatBit(rtl.ConstBit(rtl.S1), 8))
	rd := b.addRdPort(constOne())
	rd.Transparency.Set(0)
	//
	mapping := b.plan(t, lib)
	cfgs := mapping.Configs()
	//
	require.Len(t, cfgs, 1)
	cfg := cfgs[0]
	assert.Equal(t, 0, cfg.RamDef)
	require.Len(t, cfg.WrPorts, 1)
	require.Len(t, cfg.RdPorts, 1)
	assert.Equal(t, 0, cfg.WrPorts[0].RdPort)
	assert.Equal(t, 0, cfg.RdPorts[0].WrPort)
	//
	rpcfg := cfg.RdPorts[0]
	assert.False(t, rpcfg.EmuSync)
	assert.False(t, rpcfg.EmuEn)
	assert.False(t, rpcfg.EmuArst)
	assert.False(t, rpcfg.EmuSrst)
	assert.False(t, rpcfg.EmuInit)
	assert.False(t, rpcfg.EmuSrstEnPrio)
	assert.Empty(t, rpcfg.EmuTrans)
	assert.Empty(t, rpcfg.ResetVals)
	assert.Empty(t, cfg.WrPorts[0].EmuPrio)
	//
	assert.True(t, mapping.LogicOK())
}

// Without any wrtrans capability, a transparent port pair falls back to
// emulated transparency.
func TestMapping_TransparencyEmulation(t *testing.T) {
	lib := testLibrary(t, `
		ram block $BRAM {
			dims 10 8;
			port srsw "A" {
				width 8;
				rden any;
			}
		}
	`)
	//
	b := newMemBuilder(8, 10)
	b.addWrPort(rtl.RepeatBit(rtl.ConstBit(rtl.S1), 8))
	rd := b.addRdPort(constOne())
	rd.Transparency.Set(0)
	//
	cfgs := b.plan(t, lib).Configs()
	//
	require.Len(t, cfgs, 1)
	assert.Equal(t, []int{0}, cfgs[0].RdPorts[0].EmuTrans)
}

// A non-transparent pair with only new-kind transparency dies; with an
// old-kind capability it survives without emulation.
func TestMapping_NonTransparentNeedsOldCap(t *testing.T) {
	newOnly := testLibrary(t, `
		ram block $BRAM {
			dims 10 8;
			port srsw "A" {
				rden any;
				wrtrans self new;
			}
		}
	`)
	//
	b := newMemBuilder(8, 10)
	b.addWrPort(rtl.RepeatBit(rtl.ConstBit(rtl.S1), 8))
	b.addRdPort(constOne())
	//
	assert.Empty(t, b.plan(t, newOnly).Configs())
	//
	oldCap := testLibrary(t, `
		ram block $BRAM {
			dims 10 8;
			port srsw "A" {
				rden any;
				wrtrans self old;
			}
		}
	`)
	//
	b = newMemBuilder(8, 10)
	b.addWrPort(rtl.RepeatBit(rtl.ConstBit(rtl.S1), 8))
	b.addRdPort(constOne())
	//
	cfgs := b.plan(t, oldCap).Configs()
	require.Len(t, cfgs, 1)
	assert.Empty(t, cfgs[0].RdPorts[0].EmuTrans)
}

// Sync reset with an enable in use splits over the srst/enable priority
// modes, emulating the priority when the primitive's mode disagrees with
// the source.
func TestMapping_SrstEnablePriority(t *testing.T) {
	lib := testLibrary(t, `
		ram block $BRAM {
			dims 10 4;
			port sr "R" {
				rden any;
				rdsrstval "SRV";
				rdsrstmode en-over-srst;
			}
		}
	`)
	//
	srstVal, _ := rtl.ParseConst("1111")
	//
	build := func(ceOverSrst bool) *memBuilder {
		b := newMemBuilder(4, 10)
		rd := b.addRdPort(rtl.WireSig(b.design.AddWire("re", 1)))
		rd.Srst = rtl.WireSig(b.design.AddWire("srst", 1))[0]
		rd.SrstValue = srstVal
		rd.CeOverSrst = ceOverSrst
		//
		return b
	}
	// Source wants srst to win, primitive gives enable priority: emulate.
	b := build(false)
	cfgs := b.plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	assert.True(t, cfgs[0].RdPorts[0].EmuSrstEnPrio)
	assert.False(t, cfgs[0].RdPorts[0].EmuSrst)
	assert.Equal(t, map[string]rtl.Const{"SRV": srstVal}, cfgs[0].RdPorts[0].ResetVals)
	// Priorities agree: no emulation.
	b = build(true)
	cfgs = b.plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	assert.False(t, cfgs[0].RdPorts[0].EmuSrstEnPrio)
	assert.False(t, cfgs[0].RdPorts[0].EmuSrst)
}

// A zero-kind reset value capability only admits values without set bits.
func TestMapping_SrstZeroValue(t *testing.T) {
	lib := testLibrary(t, `
		ram block $BRAM {
			dims 10 4;
			port sr "R" {
				rden any;
				rdsrstval zero;
			}
		}
	`)
	//
	build := func(value string) *memBuilder {
		b := newMemBuilder(4, 10)
		rd := b.addRdPort(constOne())
		rd.Srst = rtl.WireSig(b.design.AddWire("srst", 1))[0]
		rd.SrstValue, _ = rtl.ParseConst(value)
		//
		return b
	}
	// All-zero (with undefined bits) resets map onto the hard zero reset.
	cfgs := build("0x00").plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	assert.False(t, cfgs[0].RdPorts[0].EmuSrst)
	// A set bit forces emulation.
	cfgs = build("0100").plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	assert.True(t, cfgs[0].RdPorts[0].EmuSrst)
}

// An srsw port with rden write-excludes is only usable when the solver can
// prove reads and writes never coincide.
func TestMapping_WriteExcludes(t *testing.T) {
	lib := testLibrary(t, `
		ram block $BRAM {
			dims 10 8;
			port srsw "A" {
				rden write-excludes;
				wrtrans self old;
			}
		}
	`)
	// With re = ~we the exclusion holds.
	b := newMemBuilder(8, 10)
	we := b.design.AddWire("we", 1)
	re := b.design.AddWire("re", 1)
	b.design.AddCell(&rtl.Cell{Kind: rtl.CellNot, A: rtl.WireSig(we), Y: rtl.WireSig(re)})
	//
	b.addWrPort(rtl.RepeatBit(rtl.WireSig(we)[0], 8))
	b.addRdPort(rtl.WireSig(re))
	//
	cfgs := b.plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	assert.False(t, cfgs[0].RdPorts[0].EmuEn)
	assert.Equal(t, 0, cfgs[0].RdPorts[0].WrPort)
	// With an unrelated read enable it cannot, and the candidate dies.
	b = newMemBuilder(8, 10)
	we = b.design.AddWire("we", 1)
	re = b.design.AddWire("re", 1)
	//
	b.addWrPort(rtl.RepeatBit(rtl.WireSig(we)[0], 8))
	b.addRdPort(rtl.WireSig(re))
	//
	assert.Empty(t, b.plan(t, lib).Configs())
}

// An srsw port with rden write-implies emulates the enable unless every
// write provably reads.
func TestMapping_WriteImplies(t *testing.T) {
	lib := testLibrary(t, `
		ram block $BRAM {
			dims 10 8;
			port srsw "A" {
				rden write-implies;
				wrtrans self old;
			}
		}
	`)
	// re = we | other, so writing implies reading.
	b := newMemBuilder(8, 10)
	we := b.design.AddWire("we", 1)
	other := b.design.AddWire("other", 1)
	re := b.design.AddWire("re", 1)
	b.design.AddCell(&rtl.Cell{
		Kind: rtl.CellOr, A: rtl.WireSig(we), B: rtl.WireSig(other), Y: rtl.WireSig(re),
	})
	//
	b.addWrPort(rtl.RepeatBit(rtl.WireSig(we)[0], 8))
	b.addRdPort(rtl.WireSig(re))
	//
	cfgs := b.plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	assert.False(t, cfgs[0].RdPorts[0].EmuEn)
	// Independent enables require emulation.
	b = newMemBuilder(8, 10)
	we = b.design.AddWire("we", 1)
	re = b.design.AddWire("re", 1)
	//
	b.addWrPort(rtl.RepeatBit(rtl.WireSig(we)[0], 8))
	b.addRdPort(rtl.WireSig(re))
	//
	cfgs = b.plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	assert.True(t, cfgs[0].RdPorts[0].EmuEn)
}

// Write priority either matches a wrprio capability or is emulated.
func TestMapping_Priority(t *testing.T) {
	withCap := testLibrary(t, `
		ram block $BRAM {
			dims 10 8;
			port sw "W0" {
				wrprio "W0";
			}
			port sw "W1" {
				wrprio "W0";
			}
			port sr "R" { rden any; }
		}
	`)
	//
	b := newMemBuilder(8, 10)
	b.addWrPort(rtl.RepeatBit(rtl.ConstBit(rtl.S1), 8))
	w1 := b.addWrPort(rtl.RepeatBit(rtl.ConstBit(rtl.S1), 8))
	w1.Priority.Set(0)
	//
	cfgs := b.plan(t, withCap).Configs()
	// Port zero lands in either group; the capability only matches when it
	// landed in group W0.
	var free, emulated int
	//
	for i := range cfgs {
		if len(cfgs[i].WrPorts[1].EmuPrio) == 0 {
			free++
		} else {
			assert.Equal(t, []int{0}, cfgs[i].WrPorts[1].EmuPrio)
			emulated++
		}
	}
	//
	assert.NotZero(t, free)
	assert.NotZero(t, emulated)
}

// Style attributes restrict the candidate set, and an impossible explicit
// request is a hard error.
func TestMapping_StyleRequests(t *testing.T) {
	lib := testLibrary(t, `
		ram distributed $LUTRAM {
			dims 5 2;
			port ar "R" { }
			port sw "W" { }
		}
		ram block $BRAM {
			dims 10 8;
			style "bram_a";
			port sr "R" { rden any; }
			port sw "W" { }
		}
	`)
	// A block request filters out the distributed candidate.
	b := newMemBuilder(8, 10)
	b.addRdPort(constOne())
	b.mem.Attributes["ram_style"] = rtl.StringValue("block")
	//
	cfgs := b.plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	assert.Equal(t, 1, cfgs[0].RamDef)
	// A named style picks the def carrying it.
	b = newMemBuilder(8, 10)
	b.addRdPort(constOne())
	b.mem.Attributes["ram_style"] = rtl.StringValue("bram_a")
	//
	cfgs = b.plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	assert.Equal(t, 1, cfgs[0].RamDef)
	// An unknown style is fatal.
	b = newMemBuilder(8, 10)
	b.addRdPort(constOne())
	b.mem.Attributes["ram_style"] = rtl.StringValue("mythical")
	//
	_, err := MapMemory(NewWorker(b.design), &b.mem, lib)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no available RAMs with style \"mythical\"")
	// An impossible kind request is fatal too.
	b = newMemBuilder(8, 10)
	b.addRdPort(constOne())
	b.mem.Attributes["ram_style"] = rtl.StringValue("huge")
	//
	_, err = MapMemory(NewWorker(b.design), &b.mem, lib)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no available huge RAMs")
	// A logic request bypasses the library entirely.
	b = newMemBuilder(8, 10)
	b.addRdPort(constOne())
	b.mem.Attributes["ram_style"] = rtl.StringValue("registers")
	//
	mapping := b.plan(t, lib)
	assert.Empty(t, mapping.Configs())
	assert.Equal(t, ramlib.RamLogic, mapping.Kind())
	assert.True(t, mapping.LogicOK())
}

// Memory initialization contents restrict candidates to definitions whose
// init capability admits them.
func TestMapping_InitFilter(t *testing.T) {
	lib := testLibrary(t, `
		ram block $NOINIT {
			dims 10 8;
			port sr "R" { rden any; }
		}
		ram block $ZEROINIT {
			dims 10 8;
			init zero;
			port sr "R" { rden any; }
		}
		ram block $ANYINIT {
			dims 10 8;
			init any;
			port sr "R" { rden any; }
		}
	`)
	//
	build := func(word string) *memBuilder {
		b := newMemBuilder(8, 10)
		b.addRdPort(constOne())
		data, _ := rtl.ParseConst(word)
		b.mem.Inits = []rtl.MemInit{{Addr: 0, Data: data}}
		//
		return b
	}
	// Fully undefined contents do not restrict anything.
	cfgs := build("xxxxxxxx").plan(t, lib).Configs()
	assert.Len(t, cfgs, 3)
	// All-zero contents admit zero or any init.
	cfgs = build("0000xx00").plan(t, lib).Configs()
	require.Len(t, cfgs, 2)
	assert.Equal(t, 1, cfgs[0].RamDef)
	assert.Equal(t, 2, cfgs[1].RamDef)
	// A set bit requires arbitrary init.
	cfgs = build("00010000").plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	assert.Equal(t, 2, cfgs[0].RamDef)
}

// Boundary behaviours around port kinds.
func TestMapping_PortKindBoundaries(t *testing.T) {
	syncOnly := testLibrary(t, `
		ram block $BRAM {
			dims 10 8;
			port sr "R" { rden any; }
			port sw "W" { }
		}
	`)
	// An async read port rejects a library with only sync read ports.
	b := newMemBuilder(8, 10)
	rd := b.addRdPort(constOne())
	rd.ClkEnable = false
	//
	mapping := b.plan(t, syncOnly)
	assert.Empty(t, mapping.Configs())
	assert.True(t, mapping.LogicOK())
	// An async write port empties the candidate set immediately.
	b = newMemBuilder(8, 10)
	wr := b.addWrPort(rtl.RepeatBit(rtl.ConstBit(rtl.S1), 8))
	wr.ClkEnable = false
	//
	mapping = b.plan(t, syncOnly)
	assert.Empty(t, mapping.Configs())
	assert.False(t, mapping.LogicOK())
	// A sync read port maps onto an async read def with an emulated output
	// register.
	asyncOnly := testLibrary(t, `
		ram distributed $LUTRAM {
			dims 10 8;
			port ar "R" { }
			port sw "W" { }
		}
	`)
	//
	b = newMemBuilder(8, 10)
	b.addRdPort(constOne())
	//
	cfgs := b.plan(t, asyncOnly).Configs()
	require.Len(t, cfgs, 1)
	assert.True(t, cfgs[0].RdPorts[0].EmuSync)
}

// A memory with no ports at all is feasible for every definition admitting
// its init constraints.
func TestMapping_EmptyMemory(t *testing.T) {
	lib := testLibrary(t, `
		ram block $A {
			dims 10 8;
			port sr "R" { rden any; }
		}
		ram block $B {
			dims 10 8;
			port sw "W" { }
		}
	`)
	//
	b := newMemBuilder(8, 10)
	mapping := b.plan(t, lib)
	//
	assert.Len(t, mapping.Configs(), 2)
	assert.True(t, mapping.LogicOK())
}

// A read enable of constant one avoids enable emulation on rden none; any
// other enable requires it.
func TestMapping_RdEnNone(t *testing.T) {
	lib := testLibrary(t, `
		ram block $BRAM {
			dims 10 8;
			port sr "R" { rden none; }
		}
	`)
	//
	b := newMemBuilder(8, 10)
	b.addRdPort(constOne())
	//
	cfgs := b.plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	assert.False(t, cfgs[0].RdPorts[0].EmuEn)
	//
	b = newMemBuilder(8, 10)
	b.addRdPort(rtl.WireSig(b.design.AddWire("re", 1)))
	//
	cfgs = b.plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	assert.True(t, cfgs[0].RdPorts[0].EmuEn)
}

// Conflicting option bindings between consumed capabilities prune the
// configurations which would absorb both.
func TestMapping_OptionDisagreement(t *testing.T) {
	lib := testLibrary(t, `
		ram block $BRAM {
			dims 10 8;
			port sr "R" {
				option "FAMILY" "A" clock anyedge;
				option "FAMILY" "B" rden any;
				option "FAMILY" "A" rden none;
			}
		}
	`)
	//
	b := newMemBuilder(8, 10)
	b.addRdPort(constOne())
	//
	cfgs := b.plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	assert.Equal(t, rtl.StringValue("A"), cfgs[0].Opts["FAMILY"])
}

// Named clocks force ports naming the same domain onto the same source
// clock.
func TestMapping_NamedClockAgreement(t *testing.T) {
	lib := testLibrary(t, `
		ram block $BRAM {
			dims 10 8;
			port sw "W" { clock posedge "CLK"; }
			port sr "R" { clock posedge "CLK"; rden any; }
		}
	`)
	// Same clock on both ports: fine.
	b := newMemBuilder(8, 10)
	b.addWrPort(rtl.RepeatBit(rtl.ConstBit(rtl.S1), 8))
	rd := b.addRdPort(constOne())
	rd.CollisionX.Set(0)
	//
	cfgs := b.plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	require.Contains(t, cfgs[0].ClocksPnedge, "CLK")
	assert.False(t, cfgs[0].ClocksPnedge["CLK"].Flag)
	// Different clocks: no feasible configuration.
	b = newMemBuilder(8, 10)
	b.addWrPort(rtl.RepeatBit(rtl.ConstBit(rtl.S1), 8))
	rd = b.addRdPort(constOne())
	rd.Clk = rtl.WireSig(b.design.AddWire("clk2", 1))
	rd.CollisionX.Set(0)
	//
	assert.Empty(t, b.plan(t, lib).Configs())
	// A negedge source on a posedge primitive clock records an inversion.
	b = newMemBuilder(8, 10)
	wr := b.addWrPort(rtl.RepeatBit(rtl.ConstBit(rtl.S1), 8))
	wr.ClkPolarity = false
	rd = b.addRdPort(constOne())
	rd.ClkPolarity = false
	rd.CollisionX.Set(0)
	//
	cfgs = b.plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	assert.True(t, cfgs[0].ClocksPnedge["CLK"].Flag)
}

// Address comparison for port sharing sees through muxes with an undefined
// input.
func TestMapping_SharedAddrThroughXMux(t *testing.T) {
	lib := testLibrary(t, `
		ram block $BRAM {
			dims 10 8;
			port srsw "A" {
				rden any;
				wrtrans self old;
			}
		}
	`)
	//
	b := newMemBuilder(8, 10)
	// The read address is mux(addr, x) of the write address.
	raddr := b.design.AddWire("raddr", 10)
	sel := b.design.AddWire("sel", 1)
	b.design.AddCell(&rtl.Cell{
		Kind: rtl.CellMux,
		A:    b.addr,
		B:    rtl.ConstSig(rtl.UndefConst(10)),
		S:    rtl.WireSig(sel),
		Y:    rtl.WireSig(raddr),
	})
	//
	b.addWrPort(rtl.RepeatBit(rtl.ConstBit(rtl.S1), 8))
	rd := b.addRdPort(constOne())
	rd.Addr = rtl.WireSig(raddr)
	//
	cfgs := b.plan(t, lib).Configs()
	require.Len(t, cfgs, 1)
	assert.Equal(t, 0, cfgs[0].RdPorts[0].WrPort)
}

// Planning is deterministic: running twice yields identical candidates.
func TestMapping_Deterministic(t *testing.T) {
	lib := testLibrary(t, `
		ram block $BRAM {
			dims 10 8;
			port srsw "A" "B" {
				clock anyedge "CLK";
				rden any;
				wrtrans other new;
				wrtrans self new;
			}
			port sr "R" { rden any; }
		}
	`)
	//
	run := func() []MemConfig {
		b := newMemBuilder(8, 10)
		b.addWrPort(rtl.RepeatBit(rtl.ConstBit(rtl.S1), 8))
		rd := b.addRdPort(constOne())
		rd.Transparency.Set(0)
		//
		return b.plan(t, lib).Configs()
	}
	//
	first := run()
	second := run()
	require.Equal(t, len(first), len(second))
	//
	for i := range first {
		assert.Equal(t, first[i].RamDef, second[i].RamDef)
		assert.Equal(t, first[i].WrPorts, second[i].WrPorts)
		assert.Equal(t, first[i].RdPorts, second[i].RdPorts)
	}
}
