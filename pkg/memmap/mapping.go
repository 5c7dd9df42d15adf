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

// Package memmap decides how an abstract memory can be realized by the RAM
// primitives of a library.  For each memory it enumerates the feasible
// placements, splitting partial configurations over the library's capability
// choices and pruning those whose option, clock or reset-value bindings
// disagree.  Features a primitive lacks are marked for emulation in
// surrounding logic where possible, such that a downstream selector only
// chooses among working configurations.
package memmap

import (
	"fmt"

	"github.com/go-air/gini/z"

	"github.com/zchn/yosys/pkg/ramlib"
	"github.com/zchn/yosys/pkg/rtl"
	"github.com/zchn/yosys/pkg/sat"
)

// Worker holds the per-module state shared by all memories of one module:
// the design view and the signal map used for address comparison.
type Worker struct {
	Design *rtl.Design
	// Signal identity modulo muxes with an undefined input.
	SigmapXMux *rtl.SigMap
}

// NewWorker constructs a worker for a given design.
func NewWorker(design *rtl.Design) *Worker {
	return &Worker{design, rtl.NewXMuxSigMap(design)}
}

// Mapping is the result of planning one memory against a library: either the
// memory was requested into soft logic, or a set of feasible configurations
// (possibly empty) remains.
type Mapping struct {
	worker *Worker
	engine *sat.Engine
	mem    *rtl.Mem
	lib    *ramlib.Library
	//
	cfgs    []MemConfig
	logicOK bool
	kind    ramlib.RamKind
	style   string
	// Caches for the enable-relationship predicates.
	wrEnCache         map[int]z.Lit
	wrImpliesRdCache  map[[2]int]bool
	wrExcludesRdCache map[[2]int]bool
}

// MapMemory plans one memory against a library, producing the set of
// feasible configurations.  An error is returned when the user explicitly
// requested a kind or style no RAM definition can satisfy.
func MapMemory(worker *Worker, mem *rtl.Mem, lib *ramlib.Library) (*Mapping, error) {
	m := &Mapping{
		worker:            worker,
		engine:            sat.NewEngine(worker.Design),
		mem:               mem,
		lib:               lib,
		wrEnCache:         make(map[int]z.Lit),
		wrImpliesRdCache:  make(map[[2]int]bool),
		wrExcludesRdCache: make(map[[2]int]bool),
	}
	//
	if err := m.run(); err != nil {
		return nil, err
	}
	//
	return m, nil
}

// Configs returns the feasible configurations remaining after planning.
func (m *Mapping) Configs() []MemConfig {
	return m.cfgs
}

// LogicOK determines whether the soft-logic fallback is available for this
// memory.
func (m *Mapping) LogicOK() bool {
	return m.logicOK
}

// Kind returns the user-requested mapping kind.
func (m *Mapping) Kind() ramlib.RamKind {
	return m.kind
}

// Style returns the user-requested mapping style, or "".
func (m *Mapping) Style() string {
	return m.style
}

func (m *Mapping) run() error {
	m.determineStyle()
	m.logicOK = m.determineLogicOK()
	// A memory forced into soft logic never sees the library.
	if m.kind == ramlib.RamLogic {
		return nil
	}
	// Seed one candidate per RAM definition.
	for i := range m.lib.RamDefs {
		m.cfgs = append(m.cfgs, newMemConfig(i))
	}
	//
	if err := m.handleRamKind(); err != nil {
		return err
	}
	//
	if err := m.handleRamStyle(); err != nil {
		return err
	}
	//
	m.handleInit()
	m.handleWrPorts()
	m.handleRdPorts()
	m.handleTrans()
	// If we got this far, the memory is mappable.  The following stages can
	// require emulating some functionality, but cannot cause the mapping to
	// fail.
	m.handlePriority()
	m.handleRdInit()
	m.handleRdArst()
	m.handleRdSrst()
	//
	m.logCandidates()
	m.handleDims()
	//
	return nil
}

// handleRamKind applies RAM kind restrictions (distributed/block/huge), if
// any.
func (m *Mapping) handleRamKind() error {
	if m.kind == ramlib.RamAuto || m.kind == ramlib.RamNotLogic {
		return nil
	}
	//
	var newCfgs []MemConfig
	//
	for i := range m.cfgs {
		if m.lib.RamDefs[m.cfgs[i].RamDef].Kind == m.kind {
			newCfgs = append(newCfgs, m.cfgs[i])
		}
	}
	//
	m.cfgs = newCfgs
	//
	if len(m.cfgs) == 0 {
		return fmt.Errorf("%s.%s: no available %s RAMs", m.mem.Module, m.mem.ID, m.kind)
	}
	//
	return nil
}

// handleRamStyle applies specific RAM style restrictions, if any.
func (m *Mapping) handleRamStyle() error {
	if m.style == "" {
		return nil
	}
	//
	var newCfgs []MemConfig
	//
	for i := range m.cfgs {
		cfg := &m.cfgs[i]
		//
		for _, def := range m.lib.RamDefs[cfg.RamDef].Style {
			if def.Val != m.style {
				continue
			}
			//
			cfg2 := cfg.Clone()
			if !applyOpts(cfg2.Opts, def.Opts) {
				continue
			}
			//
			newCfgs = append(newCfgs, cfg2)
		}
	}
	//
	m.cfgs = newCfgs
	//
	if len(m.cfgs) == 0 {
		return fmt.Errorf("%s.%s: no available RAMs with style %q", m.mem.Module, m.mem.ID, m.style)
	}
	//
	return nil
}

// handleInit applies memory initializer restrictions, if any.
func (m *Mapping) handleInit() {
	var hasNonx, hasOne bool
	//
	for _, init := range m.mem.Inits {
		if init.Data.FullyUndef() {
			continue
		}
		//
		hasNonx = true
		//
		if init.Data.HasOne() {
			hasOne = true
		}
	}
	//
	if !hasNonx {
		return
	}
	//
	var newCfgs []MemConfig
	//
	for i := range m.cfgs {
		cfg := &m.cfgs[i]
		//
		for _, def := range m.lib.RamDefs[cfg.RamDef].Init {
			if hasOne {
				if def.Val != ramlib.InitAny {
					continue
				}
			} else if def.Val != ramlib.InitAny && def.Val != ramlib.InitZero {
				continue
			}
			//
			cfg2 := cfg.Clone()
			if !applyOpts(cfg2.Opts, def.Opts) {
				continue
			}
			//
			newCfgs = append(newCfgs, cfg2)
		}
	}
	//
	m.cfgs = newCfgs
}

// handleWrPorts performs write port assignment, validating clock options as
// it goes.
func (m *Mapping) handleWrPorts() {
	for pidx := range m.mem.WrPorts {
		port := &m.mem.WrPorts[pidx]
		//
		if !port.ClkEnable {
			// Async write ports not supported.
			m.cfgs = nil
			return
		}
		//
		var newCfgs []MemConfig
		//
		for ci := range m.cfgs {
			cfg := &m.cfgs[ci]
			ramDef := &m.lib.RamDefs[cfg.RamDef]
			//
			for i := range ramDef.Ports {
				def := &ramDef.Ports[i]
				// Make sure the target is a write port.
				if !def.Val.Kind.IsWrite() {
					continue
				}
				// Make sure the target port group still has a free port.
				if usedWrPorts(cfg, i) >= len(def.Val.Names) {
					continue
				}
				// Apply the options.
				cfg2 := cfg.Clone()
				if !applyOpts(cfg2.Opts, def.Opts) {
					continue
				}
				//
				pcfg2 := WrPortConfig{RdPort: -1, PortDef: i, PortOpts: make(ramlib.Options)}
				// Pick a clock def.
				for _, cdef := range def.Val.Clock {
					cfg3 := cfg2.Clone()
					pcfg3 := pcfg2.clone()
					//
					if !applyOpts(cfg3.Opts, cdef.Opts) {
						continue
					}
					//
					if !applyOpts(pcfg3.PortOpts, cdef.PortOpts) {
						continue
					}
					//
					if !applyClock(&cfg3, cdef.Val, port.Clk, port.ClkPolarity) {
						continue
					}
					//
					cfg3.WrPorts = append(cfg3.WrPorts, pcfg3)
					newCfgs = append(newCfgs, cfg3)
				}
			}
		}
		//
		m.cfgs = newCfgs
	}
}

// usedWrPorts counts how many write ports of a configuration already occupy
// a given port group.
func usedWrPorts(cfg *MemConfig, def int) int {
	used := 0
	//
	for i := range cfg.WrPorts {
		if cfg.WrPorts[i].PortDef == def {
			used++
		}
	}
	//
	return used
}

// handleRdPorts performs read port assignment, validating clock and rden
// options as it goes.  Each source read port either claims a fresh primitive
// port, or shares the primitive port of a compatible write port.
func (m *Mapping) handleRdPorts() {
	for pidx := range m.mem.RdPorts {
		port := &m.mem.RdPorts[pidx]
		//
		var newCfgs []MemConfig
		//
		for ci := range m.cfgs {
			cfg := &m.cfgs[ci]
			ramDef := &m.lib.RamDefs[cfg.RamDef]
			// First pass: read port not shared with a write port.
			for i := range ramDef.Ports {
				def := &ramDef.Ports[i]
				// Make sure the target is a read port.
				if !def.Val.Kind.IsRead() {
					continue
				}
				// If mapping an async port, accept only async defs.
				if !port.ClkEnable && def.Val.Kind.IsSyncRead() {
					continue
				}
				// Make sure the target port group has a port not used up by
				// write ports.  Overuse by other read ports is not a problem —
				// this will just result in memory duplication.
				if usedWrPorts(cfg, i) >= len(def.Val.Names) {
					continue
				}
				// Apply the options.
				cfg2 := cfg.Clone()
				if !applyOpts(cfg2.Opts, def.Opts) {
					continue
				}
				//
				pcfg2 := RdPortConfig{
					WrPort:    -1,
					PortDef:   i,
					PortOpts:  make(ramlib.Options),
					ResetVals: make(map[string]rtl.Const),
				}
				//
				if def.Val.Kind.IsSyncRead() {
					// Pick a clock def.
					for _, cdef := range def.Val.Clock {
						cfg3 := cfg2.Clone()
						pcfg3 := pcfg2.clone()
						//
						if !applyOpts(cfg3.Opts, cdef.Opts) {
							continue
						}
						//
						if !applyOpts(pcfg3.PortOpts, cdef.PortOpts) {
							continue
						}
						//
						if !applyClock(&cfg3, cdef.Val, port.Clk, port.ClkPolarity) {
							continue
						}
						// Pick a rden def.
						for _, endef := range def.Val.RdEn {
							cfg4 := cfg3.Clone()
							pcfg4 := pcfg3.clone()
							//
							if !applyOpts(cfg4.Opts, endef.Opts) {
								continue
							}
							//
							if !applyOpts(pcfg4.PortOpts, endef.PortOpts) {
								continue
							}
							//
							if endef.Val == ramlib.RdEnNone && !port.En.IsConstOne() {
								pcfg4.EmuEn = true
							}
							//
							cfg4.RdPorts = append(cfg4.RdPorts, pcfg4)
							newCfgs = append(newCfgs, cfg4)
						}
					}
				} else {
					pcfg2.EmuSync = port.ClkEnable
					cfg2.RdPorts = append(cfg2.RdPorts, pcfg2)
					newCfgs = append(newCfgs, cfg2)
				}
			}
			// Second pass: read port shared with a write port.
			for wpidx := range m.mem.WrPorts {
				wport := &m.mem.WrPorts[wpidx]
				didx := cfg.WrPorts[wpidx].PortDef
				def := &ramDef.Ports[didx]
				// Make sure the write port is not yet shared.
				if cfg.WrPorts[wpidx].RdPort != -1 {
					continue
				}
				// Make sure the target is a read port.
				if !def.Val.Kind.IsRead() {
					continue
				}
				// Validate address compatibility.
				if !m.addrCompatible(wpidx, pidx) {
					continue
				}
				// Validate clock compatibility, if needed.
				if def.Val.Kind == ramlib.PortSrsw {
					if !port.ClkEnable {
						continue
					}
					//
					if !port.Clk.Equal(wport.Clk) || port.ClkPolarity != wport.ClkPolarity {
						continue
					}
				}
				// Okay, let's fill it in.
				cfg2 := cfg.Clone()
				cfg2.WrPorts[wpidx].RdPort = pidx
				//
				pcfg2 := RdPortConfig{
					WrPort:    wpidx,
					PortDef:   didx,
					PortOpts:  make(ramlib.Options),
					ResetVals: make(map[string]rtl.Const),
					EmuSync:   port.ClkEnable && def.Val.Kind == ramlib.PortArsw,
				}
				// For srsw, pick a rden capability.
				if def.Val.Kind == ramlib.PortSrsw {
					for _, endef := range def.Val.RdEn {
						cfg3 := cfg2.Clone()
						pcfg3 := pcfg2.clone()
						//
						if !applyWrPortOpts(&cfg3, wpidx, endef) {
							continue
						}
						//
						switch endef.Val {
						case ramlib.RdEnNone:
							pcfg3.EmuEn = !port.En.IsConstOne()
						case ramlib.RdEnAny:
							// Nothing.
						case ramlib.RdEnWriteImplies:
							pcfg3.EmuEn = !m.wrImpliesRd(wpidx, pidx)
						case ramlib.RdEnWriteExcludes:
							if !m.wrExcludesRd(wpidx, pidx) {
								continue
							}
						}
						//
						cfg3.RdPorts = append(cfg3.RdPorts, pcfg3)
						newCfgs = append(newCfgs, cfg3)
					}
				} else {
					cfg2.RdPorts = append(cfg2.RdPorts, pcfg2)
					newCfgs = append(newCfgs, cfg2)
				}
			}
		}
		//
		m.cfgs = newCfgs
	}
}

// addrCompatible determines whether a write and a read port always address
// the same word, comparing the two addresses through the mux-undef signal
// map after aligning their widths.
func (m *Mapping) addrCompatible(wpidx int, rpidx int) bool {
	wport := &m.mem.WrPorts[wpidx]
	rport := &m.mem.RdPorts[rpidx]
	//
	maxWideLog2 := max(rport.WideLog2, wport.WideLog2)
	raddr := rport.Addr.ExtractEnd(maxWideLog2)
	waddr := wport.Addr.ExtractEnd(maxWideLog2)
	abits := max(len(raddr), len(waddr))
	raddr = raddr.ExtendU0(abits)
	waddr = waddr.ExtendU0(abits)
	//
	return m.worker.SigmapXMux.MapSig(raddr).Equal(m.worker.SigmapXMux.MapSig(waddr))
}

// handleTrans validates transparency restrictions and determines where soft
// transparency logic needs to be added.
func (m *Mapping) handleTrans() {
	for rpidx := range m.mem.RdPorts {
		rport := &m.mem.RdPorts[rpidx]
		if !rport.ClkEnable {
			continue
		}
		//
		for wpidx := range m.mem.WrPorts {
			wport := &m.mem.WrPorts[wpidx]
			//
			if !wport.ClkEnable {
				continue
			}
			//
			if !rport.Clk.Equal(wport.Clk) || rport.ClkPolarity != wport.ClkPolarity {
				continue
			}
			//
			if rport.CollisionX.Test(uint(wpidx)) {
				continue
			}
			//
			transparent := rport.Transparency.Test(uint(wpidx))
			// If we got this far, we have a transparency restriction to
			// uphold.
			var newCfgs []MemConfig
			//
			for ci := range m.cfgs {
				cfg := &m.cfgs[ci]
				rpcfg := &cfg.RdPorts[rpidx]
				wpcfg := &cfg.WrPorts[wpidx]
				rdef := &m.lib.RamDefs[cfg.RamDef]
				wpdef := &rdef.Ports[wpcfg.PortDef]
				rpdef := &rdef.Ports[rpcfg.PortDef]
				//
				if rpcfg.EmuSync {
					// For an emulated sync port, just add the transparency
					// logic if necessary.
					cfg2 := cfg.Clone()
					if transparent {
						rpcfg2 := &cfg2.RdPorts[rpidx]
						rpcfg2.EmuTrans = append(rpcfg2.EmuTrans, wpidx)
					}
					//
					newCfgs = append(newCfgs, cfg2)
					//
					continue
				}
				// Otherwise, split through the relevant wrtrans caps.  For
				// non-transparent ports, the cap needs to be present.  For
				// transparent ports, transparency can be emulated even
				// without a direct cap.
				foundFree := false
				//
				for _, tdef := range wpdef.Val.WrTrans {
					// Check if the target matches.
					switch tdef.Val.TargetKind {
					case ramlib.TransSelf:
						if wpcfg.RdPort != rpidx {
							continue
						}
					case ramlib.TransOther:
						if wpcfg.RdPort == rpidx {
							continue
						}
					case ramlib.TransNamed:
						if rpdef.Val.Names[0] != tdef.Val.TargetName {
							continue
						}
					}
					// Check if the transparency kind is acceptable.
					if transparent {
						if tdef.Val.Kind == ramlib.TransOld {
							continue
						}
					} else if tdef.Val.Kind != ramlib.TransOld {
						continue
					}
					// Okay, we can use this cap.
					cfg2 := cfg.Clone()
					if wrPortOptsApplied(&cfg2, wpidx, tdef) {
						foundFree = true
					} else if !applyWrPortOpts(&cfg2, wpidx, tdef) {
						continue
					}
					//
					newCfgs = append(newCfgs, cfg2)
				}
				//
				if !foundFree && transparent {
					// If the port pair is transparent, but no cap was found,
					// or the cap found had a splitting cost to it, consider
					// emulation as well.
					cfg2 := cfg.Clone()
					rpcfg2 := &cfg2.RdPorts[rpidx]
					rpcfg2.EmuTrans = append(rpcfg2.EmuTrans, wpidx)
					newCfgs = append(newCfgs, cfg2)
				}
			}
			//
			m.cfgs = newCfgs
		}
	}
}

// handlePriority determines where soft priority logic needs to be added.
func (m *Mapping) handlePriority() {
	for p1idx := range m.mem.WrPorts {
		for p2idx := range m.mem.WrPorts {
			port2 := &m.mem.WrPorts[p2idx]
			//
			if !port2.Priority.Test(uint(p1idx)) {
				continue
			}
			//
			var newCfgs []MemConfig
			//
			for ci := range m.cfgs {
				cfg := &m.cfgs[ci]
				p1cfg := &cfg.WrPorts[p1idx]
				p2cfg := &cfg.WrPorts[p2idx]
				rdef := &m.lib.RamDefs[cfg.RamDef]
				p1def := &rdef.Ports[p1cfg.PortDef]
				//
				foundFree := false
				//
				for _, prdef := range rdef.Ports[p2cfg.PortDef].Val.WrPrio {
					// Check if the target matches.
					if p1def.Val.Names[0] != prdef.Val {
						continue
					}
					// Okay, we can use this cap.
					cfg2 := cfg.Clone()
					if wrPortOptsApplied(&cfg2, p2idx, prdef) {
						foundFree = true
					} else if !applyWrPortOpts(&cfg2, p2idx, prdef) {
						continue
					}
					//
					newCfgs = append(newCfgs, cfg2)
				}
				//
				if !foundFree {
					// If no cap was found, or the cap found had a splitting
					// cost to it, consider emulation as well.
					cfg2 := cfg.Clone()
					p2cfg2 := &cfg2.WrPorts[p2idx]
					p2cfg2.EmuPrio = append(p2cfg2.EmuPrio, p1idx)
					newCfgs = append(newCfgs, cfg2)
				}
			}
			//
			m.cfgs = newCfgs
		}
	}
}

// handleRdRstVal is the shared shape of the init / arst / srst stages: split
// each candidate over the reset-value capabilities of a given reset kind,
// falling back to emulation where no capability applies for free.
func (m *Mapping) handleRdRstVal(
	pidx int, kind ramlib.ResetKind, val rtl.Const,
	emulate func(*RdPortConfig),
	expand func(cfg MemConfig, rstdef ramlib.Capability[ramlib.ResetValDef]) []MemConfig,
) {
	var newCfgs []MemConfig
	//
	for ci := range m.cfgs {
		cfg := &m.cfgs[ci]
		pcfg := &cfg.RdPorts[pidx]
		pdef := &m.lib.RamDefs[cfg.RamDef].Ports[pcfg.PortDef]
		// If emulated by an async port, the value is included for free.
		if pcfg.EmuSync {
			newCfgs = append(newCfgs, cfg.Clone())
			continue
		}
		// Otherwise, find a cap.
		foundFree := false
		//
		for _, rstdef := range pdef.Val.RdRstVal {
			if rstdef.Val.Kind != kind {
				continue
			}
			//
			cfg2 := cfg.Clone()
			if !applyRstVal(&cfg2.RdPorts[pidx], rstdef.Val, val) {
				continue
			}
			//
			free := rdPortOptsApplied(&cfg2, pidx, rstdef)
			if !free && !applyRdPortOpts(&cfg2, pidx, rstdef) {
				continue
			}
			// A capability only counts as applied if it yields a successor.
			expanded := expand(cfg2, rstdef)
			if free && len(expanded) != 0 {
				foundFree = true
			}
			//
			newCfgs = append(newCfgs, expanded...)
		}
		//
		if !foundFree {
			// If no cap was found, or the cap found had a splitting cost to
			// it, consider emulation as well.
			cfg2 := cfg.Clone()
			emulate(&cfg2.RdPorts[pidx])
			newCfgs = append(newCfgs, cfg2)
		}
	}
	//
	m.cfgs = newCfgs
}

// passthrough expands a configuration to itself.
func passthrough(cfg MemConfig, _ ramlib.Capability[ramlib.ResetValDef]) []MemConfig {
	return []MemConfig{cfg}
}

// handleRdInit determines where soft init value logic needs to be added.
func (m *Mapping) handleRdInit() {
	for pidx := range m.mem.RdPorts {
		port := &m.mem.RdPorts[pidx]
		// Only sync ports are relevant.
		if !port.ClkEnable || port.InitValue.FullyUndef() {
			continue
		}
		//
		m.handleRdRstVal(pidx, ramlib.ResetInit, port.InitValue,
			func(pcfg *RdPortConfig) { pcfg.EmuInit = true }, passthrough)
	}
}

// handleRdArst determines where soft async reset logic needs to be added.
func (m *Mapping) handleRdArst() {
	for pidx := range m.mem.RdPorts {
		port := &m.mem.RdPorts[pidx]
		// Only sync ports with an async reset are relevant.
		if !port.ClkEnable || port.Arst == rtl.ConstBit(rtl.S0) || port.ArstValue.FullyUndef() {
			continue
		}
		//
		m.handleRdRstVal(pidx, ramlib.ResetAsync, port.ArstValue,
			func(pcfg *RdPortConfig) { pcfg.EmuArst = true }, passthrough)
	}
}

// handleRdSrst determines where soft sync reset logic needs to be added.
// When the port's enable is in use, every usable capability additionally
// splits over the primitive's enable/srst priority modes, emulating the
// priority where the mode disagrees with the source.
func (m *Mapping) handleRdSrst() {
	for pidx := range m.mem.RdPorts {
		port := &m.mem.RdPorts[pidx]
		// Only sync ports with a sync reset are relevant.
		if !port.ClkEnable || port.Srst == rtl.ConstBit(rtl.S0) || port.SrstValue.FullyUndef() {
			continue
		}
		//
		expand := func(cfg MemConfig, _ ramlib.Capability[ramlib.ResetValDef]) []MemConfig {
			// Without an enable there is no priority to uphold.
			if port.En.IsConstOne() {
				return []MemConfig{cfg}
			}
			//
			var res []MemConfig
			pdef := &m.lib.RamDefs[cfg.RamDef].Ports[cfg.RdPorts[pidx].PortDef]
			//
			for _, mdef := range pdef.Val.RdSrstMode {
				// Any mode is usable; at worst the priority is emulated.
				cfg3 := cfg.Clone()
				pcfg3 := &cfg3.RdPorts[pidx]
				//
				if mdef.Val == ramlib.SrstOverEn && port.CeOverSrst {
					pcfg3.EmuSrstEnPrio = true
				}
				//
				if mdef.Val == ramlib.EnOverSrst && !port.CeOverSrst {
					pcfg3.EmuSrstEnPrio = true
				}
				//
				if !applyRdPortOpts(&cfg3, pidx, mdef) {
					continue
				}
				//
				res = append(res, cfg3)
			}
			//
			return res
		}
		//
		m.handleRdRstVal(pidx, ramlib.ResetSync, port.SrstValue,
			func(pcfg *RdPortConfig) { pcfg.EmuSrst = true }, expand)
	}
}

// handleDims picks the unit geometry and data swizzle for each remaining
// configuration.  Geometry selection belongs to the downstream cost model
// and is not performed here.
func (m *Mapping) handleDims() {
}

// wrEn returns the Or-reduction of a write port's enable bits as a solver
// literal.
func (m *Mapping) wrEn(wpidx int) z.Lit {
	if lit, ok := m.wrEnCache[wpidx]; ok {
		return lit
	}
	//
	lit := m.engine.OrReduce(m.engine.ImportSig(m.mem.WrPorts[wpidx].En))
	m.wrEnCache[wpidx] = lit
	//
	return lit
}

// wrImpliesRd determines whether every cycle that writes through a given
// write port also reads through a given read port.
func (m *Mapping) wrImpliesRd(wpidx int, rpidx int) bool {
	key := [2]int{wpidx, rpidx}
	if res, ok := m.wrImpliesRdCache[key]; ok {
		return res
	}
	//
	wrEn := m.wrEn(wpidx)
	rdEn := m.engine.ImportSigBit(m.mem.RdPorts[rpidx].En[0])
	res := !m.engine.Solve(wrEn, rdEn.Not())
	m.wrImpliesRdCache[key] = res
	//
	return res
}

// wrExcludesRd determines whether a given write port and read port are never
// enabled in the same cycle.
func (m *Mapping) wrExcludesRd(wpidx int, rpidx int) bool {
	key := [2]int{wpidx, rpidx}
	if res, ok := m.wrExcludesRdCache[key]; ok {
		return res
	}
	//
	wrEn := m.wrEn(wpidx)
	rdEn := m.engine.ImportSigBit(m.mem.RdPorts[rpidx].En[0])
	res := !m.engine.Solve(wrEn, rdEn)
	m.wrExcludesRdCache[key] = res
	//
	return res
}
