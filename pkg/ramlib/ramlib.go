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

// Package ramlib provides the in-memory model of a RAM primitive library,
// together with a parser and writer for its textual description format.  A
// library is an ordered collection of RAM definitions, where almost every
// feature of a definition is a capability guarded by the option bindings in
// scope at its declaration.
package ramlib

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/zchn/yosys/pkg/rtl"
)

// Options is a binding of option names to values.  The same representation
// serves RAM-wide options and per-port options.
type Options map[string]rtl.Value

// Clone returns an independent copy of these options.
func (o Options) Clone() Options {
	res := make(Options, len(o))
	for k, v := range o {
		res[k] = v
	}

	return res
}

// Capability wraps a single guarded declaration: its payload value, plus the
// option and portoption bindings which were in scope when it was declared.
type Capability[T any] struct {
	Val      T
	Opts     Options
	PortOpts Options
}

// Caps is the sequence of capabilities declared for one feature.
type Caps[T any] []Capability[T]

// Empty is the payload of flag-like capabilities which carry no value.
type Empty struct{}

// ClockDef describes a clock capability of a port group.
type ClockDef struct {
	Kind ClkPolKind
	// Clock-domain name; ports naming the same domain must resolve to
	// the same clock.  Empty for a free-running clock input.
	Name string
}

// ResetValDef describes a read reset-value capability of a port group.
type ResetValDef struct {
	Kind    ResetKind
	ValKind ResetValKind
	// Name of the shared reset-value slot, for RstValNamed.
	Name string
}

// WrTransDef describes a write transparency capability of a port group.
type WrTransDef struct {
	TargetKind TransTargetKind
	// Name of the target port group, for TransNamed.
	TargetName string
	Kind       TransKind
}

// PortGroupDef describes a group of physically equivalent ports of a RAM
// primitive.  The length of Names gives the group's multiplicity.
type PortGroupDef struct {
	Kind  PortKind
	Names []string
	//
	Clock      Caps[ClockDef]
	Width      Caps[int]
	MixWidth   Caps[Empty]
	AddrCE     Caps[Empty]
	RdEn       Caps[RdEnKind]
	RdRstVal   Caps[ResetValDef]
	RdSrstMode Caps[SrstKind]
	WrBE       Caps[int]
	WrPrio     Caps[string]
	WrTrans    Caps[WrTransDef]
	WrCS       Caps[int]
}

// DimsDef describes the native geometry of a RAM primitive.
type DimsDef struct {
	// Address bits.
	ABits int
	// Data bits per native word.
	DBits int
}

// RamDef is one RAM primitive definition within a library.
type RamDef struct {
	// Cell identifier, beginning with `$` or `\`.
	ID   string
	Kind RamKind
	//
	Ports Caps[PortGroupDef]
	Dims  Caps[DimsDef]
	Init  Caps[InitKind]
	Style Caps[string]
}

// Library is an ordered collection of RAM definitions together with the
// build-time defines the definitions were parsed under.  Once parsed, a
// library is immutable and safe to share.
type Library struct {
	RamDefs []RamDef
	// Build-time defines consulted by ifdef/ifndef.
	defines map[string]bool
	// Defines never consulted by any library file, reported by Prepare.
	definesUnused map[string]bool
}

// NewLibrary constructs an empty library with a given set of build-time
// defines.
func NewLibrary(defines []string) *Library {
	lib := &Library{
		defines:       make(map[string]bool, len(defines)),
		definesUnused: make(map[string]bool, len(defines)),
	}
	//
	for _, d := range defines {
		lib.defines[d] = true
		lib.definesUnused[d] = true
	}
	//
	return lib
}

// Defined determines whether a given name is a build-time define of this
// library, marking it as consulted.
func (l *Library) Defined(name string) bool {
	delete(l.definesUnused, name)
	return l.defines[name]
}

// UnusedDefines returns the defines no parsed file ever consulted, sorted.
func (l *Library) UnusedDefines() []string {
	res := make([]string, 0, len(l.definesUnused))
	for name := range l.definesUnused {
		res = append(res, name)
	}
	//
	sort.Strings(res)
	//
	return res
}

// Prepare finalizes the library after every file has been parsed, warning
// about defines no file ever consulted.
func (l *Library) Prepare() {
	for _, name := range l.UnusedDefines() {
		log.Warnf("define %s not used in the library.", name)
	}
}
