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
	"strconv"

	"github.com/zchn/yosys/pkg/ramlib"
)

// styleAttributes are the memory attributes consulted for a user-requested
// mapping style, in priority order.
var styleAttributes = []string{
	"ram_block", "rom_block", "ram_style", "rom_style",
	"ramstyle", "romstyle", "syn_ramstyle", "syn_romstyle",
}

// determineStyle goes through memory attributes to determine the
// user-requested mapping style.  The first style attribute present wins.
func (m *Mapping) determineStyle() {
	m.kind = ramlib.RamAuto
	m.style = ""
	//
	for _, attr := range styleAttributes {
		val, ok := m.mem.Attributes[attr]
		if !ok {
			continue
		}
		//
		if !val.IsString() && val.Int() == 1 {
			m.kind = ramlib.RamNotLogic
			return
		}
		//
		var text string
		if val.IsString() {
			text = val.Str()
		} else {
			text = strconv.Itoa(val.Int())
		}
		//
		switch text {
		case "auto":
			// Nothing.
		case "logic", "registers":
			m.kind = ramlib.RamLogic
		case "distributed":
			m.kind = ramlib.RamDistributed
		case "block", "block_ram", "ebr":
			m.kind = ramlib.RamBlock
		case "huge", "ultra":
			m.kind = ramlib.RamHuge
		default:
			m.kind = ramlib.RamNotLogic
			m.style = text
		}
		//
		return
	}
	//
	if m.mem.GetBoolAttribute("logic_block") {
		m.kind = ramlib.RamLogic
	}
}

// determineLogicOK determines whether the memory can be realized entirely in
// soft logic: all write ports must share one clock domain.
func (m *Mapping) determineLogicOK() bool {
	if m.kind != ramlib.RamAuto && m.kind != ramlib.RamLogic {
		return false
	}
	//
	if len(m.mem.WrPorts) == 0 {
		return true
	}
	//
	first := &m.mem.WrPorts[0]
	//
	for i := range m.mem.WrPorts {
		port := &m.mem.WrPorts[i]
		//
		if !port.ClkEnable {
			return false
		}
		//
		if !port.Clk.Equal(first.Clk) || port.ClkPolarity != first.ClkPolarity {
			return false
		}
	}
	//
	return true
}
