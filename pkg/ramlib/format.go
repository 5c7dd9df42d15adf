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
package ramlib

import (
	"fmt"
	"sort"
	"strings"
)

// Format renders this library back into the textual description format.
// Conditional regions are flattened: only the capabilities recorded under
// the parse-time defines are written, each prefixed with the option scopes
// it was recorded under.  Reparsing the output reproduces the same IR.
func (l *Library) Format() string {
	var sb strings.Builder
	//
	for i := range l.RamDefs {
		if i != 0 {
			sb.WriteString("\n")
		}
		//
		formatRamDef(&sb, &l.RamDefs[i])
	}
	//
	return sb.String()
}

func formatRamDef(sb *strings.Builder, ram *RamDef) {
	fmt.Fprintf(sb, "ram %s %s {\n", ram.Kind, ram.ID)
	//
	for _, cap := range ram.Dims {
		fmt.Fprintf(sb, "\t%sdims %d %d;\n", scopePrefix(cap.Opts, cap.PortOpts, nil), cap.Val.ABits, cap.Val.DBits)
	}
	//
	for _, cap := range ram.Init {
		fmt.Fprintf(sb, "\t%sinit %s;\n", scopePrefix(cap.Opts, cap.PortOpts, nil), formatInitKind(cap.Val))
	}
	//
	for _, cap := range ram.Style {
		fmt.Fprintf(sb, "\t%sstyle %q;\n", scopePrefix(cap.Opts, cap.PortOpts, nil), cap.Val)
	}
	//
	for i := range ram.Ports {
		formatPort(sb, &ram.Ports[i])
	}
	//
	sb.WriteString("}\n")
}

func formatPort(sb *strings.Builder, port *Capability[PortGroupDef]) {
	def := &port.Val
	//
	fmt.Fprintf(sb, "\t%sport %s", scopePrefix(port.Opts, port.PortOpts, nil), def.Kind)
	//
	for _, name := range def.Names {
		fmt.Fprintf(sb, " %q", name)
	}
	//
	sb.WriteString(" {\n")
	// Capabilities inside the port block repeat the port's own scope; only
	// the difference needs to be written back.
	base := port.Opts
	//
	item := func(opts Options, portopts Options, format string, args ...any) {
		fmt.Fprintf(sb, "\t\t%s", scopePrefix(opts, portopts, base))
		fmt.Fprintf(sb, format, args...)
		sb.WriteString(";\n")
	}
	//
	for _, cap := range def.Clock {
		if cap.Val.Name != "" {
			item(cap.Opts, cap.PortOpts, "clock %s %q", formatClkPol(cap.Val.Kind), cap.Val.Name)
		} else {
			item(cap.Opts, cap.PortOpts, "clock %s", formatClkPol(cap.Val.Kind))
		}
	}
	//
	for _, cap := range def.Width {
		item(cap.Opts, cap.PortOpts, "width %d", cap.Val)
	}
	//
	for _, cap := range def.MixWidth {
		item(cap.Opts, cap.PortOpts, "mixwidth")
	}
	//
	for _, cap := range def.AddrCE {
		item(cap.Opts, cap.PortOpts, "addrce")
	}
	//
	for _, cap := range def.RdEn {
		item(cap.Opts, cap.PortOpts, "rden %s", formatRdEn(cap.Val))
	}
	//
	for _, cap := range def.RdRstVal {
		item(cap.Opts, cap.PortOpts, "%s %s", formatResetKind(cap.Val.Kind), formatResetVal(cap.Val))
	}
	//
	for _, cap := range def.RdSrstMode {
		item(cap.Opts, cap.PortOpts, "rdsrstmode %s", formatSrstKind(cap.Val))
	}
	//
	for _, cap := range def.WrBE {
		item(cap.Opts, cap.PortOpts, "wrbe %d", cap.Val)
	}
	//
	for _, cap := range def.WrPrio {
		item(cap.Opts, cap.PortOpts, "wrprio %q", cap.Val)
	}
	//
	for _, cap := range def.WrTrans {
		item(cap.Opts, cap.PortOpts, "wrtrans %s %s", formatTransTarget(cap.Val), formatTransKind(cap.Val.Kind))
	}
	//
	for _, cap := range def.WrCS {
		item(cap.Opts, cap.PortOpts, "wrcs %d", cap.Val)
	}
	//
	sb.WriteString("\t}\n")
}

// scopePrefix renders the option/portoption scopes a capability was recorded
// under, leaving out bindings already established by a base scope.
func scopePrefix(opts Options, portopts Options, base Options) string {
	var sb strings.Builder
	//
	for _, name := range sortedKeys(opts) {
		if val, ok := base[name]; ok && val == opts[name] {
			continue
		}
		//
		fmt.Fprintf(&sb, "option %q %s ", name, opts[name])
	}
	//
	for _, name := range sortedKeys(portopts) {
		fmt.Fprintf(&sb, "portoption %q %s ", name, portopts[name])
	}
	//
	return sb.String()
}

func sortedKeys(opts Options) []string {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	//
	sort.Strings(keys)
	//
	return keys
}

func formatInitKind(kind InitKind) string {
	switch kind {
	case InitZero:
		return "zero"
	case InitAny:
		return "any"
	default:
		return "none"
	}
}

func formatClkPol(kind ClkPolKind) string {
	switch kind {
	case ClkPosedge:
		return "posedge"
	case ClkNegedge:
		return "negedge"
	default:
		return "anyedge"
	}
}

func formatRdEn(kind RdEnKind) string {
	switch kind {
	case RdEnNone:
		return "none"
	case RdEnAny:
		return "any"
	case RdEnWriteImplies:
		return "write-implies"
	default:
		return "write-excludes"
	}
}

func formatResetKind(kind ResetKind) string {
	switch kind {
	case ResetInit:
		return "rdinitval"
	case ResetSync:
		return "rdsrstval"
	default:
		return "rdarstval"
	}
}

func formatResetVal(def ResetValDef) string {
	switch def.ValKind {
	case RstValNone:
		return "none"
	case RstValZero:
		return "zero"
	default:
		return fmt.Sprintf("%q", def.Name)
	}
}

func formatSrstKind(kind SrstKind) string {
	switch kind {
	case SrstOverEn:
		return "srst-over-en"
	case EnOverSrst:
		return "en-over-srst"
	default:
		return "any"
	}
}

func formatTransTarget(def WrTransDef) string {
	switch def.TargetKind {
	case TransSelf:
		return "self"
	case TransOther:
		return "other"
	default:
		return fmt.Sprintf("%q", def.TargetName)
	}
}

func formatTransKind(kind TransKind) string {
	switch kind {
	case TransNew:
		return "new"
	default:
		return "old"
	}
}
