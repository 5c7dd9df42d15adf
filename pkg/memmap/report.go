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
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/zchn/yosys/pkg/ramlib"
)

// logCandidates dumps the surviving configurations at debug level, one
// entry per candidate with its options, port assignments and emulation
// decisions.
func (m *Mapping) logCandidates() {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	//
	log.Debugf("Memory %s.%s mapping candidates (pre-geometry):", m.mem.Module, m.mem.ID)
	//
	if m.logicOK {
		log.Debug("- logic fallback")
	}
	//
	for ci := range m.cfgs {
		cfg := &m.cfgs[ci]
		rdef := &m.lib.RamDefs[cfg.RamDef]
		//
		log.Debugf("- %s:", rdef.ID)
		logOptions("  ", cfg.Opts)
		//
		for i := range cfg.WrPorts {
			pcfg := &cfg.WrPorts[i]
			pdef := &rdef.Ports[pcfg.PortDef].Val
			//
			if pcfg.RdPort == -1 {
				log.Debugf("  - write port %d: port group %s", i, pdef.Names[0])
			} else {
				log.Debugf("  - write port %d: port group %s (shared with read port %d)",
					i, pdef.Names[0], pcfg.RdPort)
			}
			//
			logOptions("    ", pcfg.PortOpts)
			//
			for _, j := range pcfg.EmuPrio {
				log.Debugf("    - emulate priority over write port %d", j)
			}
		}
		//
		for i := range cfg.RdPorts {
			pcfg := &cfg.RdPorts[i]
			pdef := &rdef.Ports[pcfg.PortDef].Val
			//
			if pcfg.WrPort == -1 {
				log.Debugf("  - read port %d: port group %s", i, pdef.Names[0])
			} else {
				log.Debugf("  - read port %d: port group %s (shared with write port %d)",
					i, pdef.Names[0], pcfg.WrPort)
			}
			//
			logOptions("    ", pcfg.PortOpts)
			//
			if pcfg.EmuSync {
				log.Debug("    - emulate data register")
			}
			//
			if pcfg.EmuEn {
				log.Debug("    - emulate clock enable")
			}
			//
			if pcfg.EmuArst {
				log.Debug("    - emulate async reset")
			}
			//
			if pcfg.EmuSrst {
				log.Debug("    - emulate sync reset")
			}
			//
			if pcfg.EmuInit {
				log.Debug("    - emulate init value")
			}
			//
			if pcfg.EmuSrstEnPrio {
				log.Debug("    - emulate sync reset / enable priority")
			}
			//
			for _, j := range pcfg.EmuTrans {
				log.Debugf("    - emulate transparency with write port %d", j)
			}
		}
	}
}

// logOptions dumps option bindings in a stable order.
func logOptions(indent string, opts ramlib.Options) {
	names := make([]string, 0, len(opts))
	for name := range opts {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	for _, name := range names {
		log.Debugf("%s- option %s %s", indent, name, opts[name])
	}
}
