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

// Package memdesc loads memory descriptions from YAML files, standing in
// for the host framework's netlist when the mapper is driven from the
// command line.  A description declares named signals, a handful of gate
// equations over them (enough to express enable relationships), and the
// memories with their read and write ports.
package memdesc

import (
	"fmt"
	"os"

	"github.com/bits-and-blooms/bitset"
	"gopkg.in/yaml.v2"

	"github.com/zchn/yosys/pkg/rtl"
)

// Description is the top-level YAML document.
type Description struct {
	Signals  []Signal `yaml:"signals"`
	Gates    []Gate   `yaml:"gates"`
	Memories []Memory `yaml:"memories"`
}

// Signal declares a named wire.
type Signal struct {
	Name  string `yaml:"name"`
	Width int    `yaml:"width"`
}

// Gate declares one combinational equation driving a declared signal.
type Gate struct {
	// One of "not", "and", "or", "mux".
	Op string `yaml:"op"`
	Y  string `yaml:"y"`
	A  string `yaml:"a"`
	B  string `yaml:"b"`
	S  string `yaml:"s"`
}

// Memory describes one memory instance.
type Memory struct {
	Name       string                 `yaml:"name"`
	Module     string                 `yaml:"module"`
	Width      int                    `yaml:"width"`
	Depth      int                    `yaml:"depth"`
	Attributes map[string]interface{} `yaml:"attributes"`
	// Initial words, most significant bit first, 'x' for undefined.
	Init       []string    `yaml:"init"`
	WritePorts []WritePort `yaml:"write_ports"`
	ReadPorts  []ReadPort  `yaml:"read_ports"`
}

// WritePort describes one write port of a memory.
type WritePort struct {
	Clk         string `yaml:"clk"`
	ClkPolarity *bool  `yaml:"clk_polarity"`
	ClkEnable   *bool  `yaml:"clk_enable"`
	En          string `yaml:"en"`
	Addr        string `yaml:"addr"`
	Data        string `yaml:"data"`
	WideLog2    int    `yaml:"wide_log2"`
	// Indices of lower write ports this port takes priority over.
	Priority []int `yaml:"priority"`
}

// ReadPort describes one read port of a memory.
type ReadPort struct {
	Clk         string `yaml:"clk"`
	ClkPolarity *bool  `yaml:"clk_polarity"`
	En          string `yaml:"en"`
	Addr        string `yaml:"addr"`
	Data        string `yaml:"data"`
	Init        string `yaml:"init"`
	Arst        string `yaml:"arst"`
	ArstValue   string `yaml:"arst_value"`
	Srst        string `yaml:"srst"`
	SrstValue   string `yaml:"srst_value"`
	CeOverSrst  bool   `yaml:"ce_over_srst"`
	// Indices of write ports this port is transparent with.
	Transparent []int `yaml:"transparent"`
	// Indices of write ports with undefined collision behaviour.
	CollisionX []int `yaml:"collision_x"`
	WideLog2   int   `yaml:"wide_log2"`
}

// LoadFile reads a description file and builds the design and memory views
// the planner consumes.
func LoadFile(filename string) (*rtl.Design, []rtl.Mem, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, err
	}
	//
	var desc Description
	if err := yaml.UnmarshalStrict(bytes, &desc); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return Build(&desc)
}

// Build constructs the design and memory views from a parsed description.
func Build(desc *Description) (*rtl.Design, []rtl.Mem, error) {
	design := rtl.NewDesign()
	//
	for _, sig := range desc.Signals {
		width := sig.Width
		if width == 0 {
			width = 1
		}
		//
		design.AddWire(sig.Name, width)
	}
	//
	for _, gate := range desc.Gates {
		if err := buildGate(design, gate); err != nil {
			return nil, nil, err
		}
	}
	//
	mems := make([]rtl.Mem, 0, len(desc.Memories))
	//
	for _, md := range desc.Memories {
		mem, err := buildMemory(design, md)
		if err != nil {
			return nil, nil, err
		}
		//
		mems = append(mems, mem)
	}
	//
	return design, mems, nil
}

func buildGate(design *rtl.Design, gate Gate) error {
	cell := &rtl.Cell{}
	//
	switch gate.Op {
	case "not":
		cell.Kind = rtl.CellNot
	case "and":
		cell.Kind = rtl.CellAnd
	case "or":
		cell.Kind = rtl.CellOr
	case "mux":
		cell.Kind = rtl.CellMux
	default:
		return fmt.Errorf("gate %s: unknown op %q", gate.Y, gate.Op)
	}
	//
	var err error
	//
	if cell.Y, err = resolveSig(design, gate.Y); err != nil {
		return err
	}
	//
	if cell.A, err = resolveSig(design, gate.A); err != nil {
		return err
	}
	//
	if gate.Op == "and" || gate.Op == "or" || gate.Op == "mux" {
		if cell.B, err = resolveSig(design, gate.B); err != nil {
			return err
		}
	}
	//
	if gate.Op == "mux" {
		if cell.S, err = resolveSig(design, gate.S); err != nil {
			return err
		}
	}
	//
	design.AddCell(cell)
	//
	return nil
}

// resolveSig resolves a signal reference: the name of a declared wire, or a
// literal of '0'/'1'/'x' characters written most significant bit first.
func resolveSig(design *rtl.Design, ref string) (rtl.SigSpec, error) {
	if ref == "" {
		return nil, fmt.Errorf("missing signal reference")
	}
	//
	if wire, ok := design.Wire(ref); ok {
		return rtl.WireSig(wire), nil
	}
	//
	if bits, ok := rtl.ParseConst(ref); ok {
		return rtl.ConstSig(bits), nil
	}
	//
	return nil, fmt.Errorf("unknown signal %q", ref)
}

// resolveBit resolves a single-bit reference, defaulting to constant zero.
func resolveBit(design *rtl.Design, ref string) (rtl.SigBit, error) {
	if ref == "" {
		return rtl.ConstBit(rtl.S0), nil
	}
	//
	sig, err := resolveSig(design, ref)
	if err != nil || len(sig) != 1 {
		return rtl.SigBit{}, fmt.Errorf("expected single-bit signal, got %q", ref)
	}
	//
	return sig[0], nil
}

// resolveValue parses a constant value reference, defaulting to fully
// undefined at a given width.
func resolveValue(ref string, width int) (rtl.Const, error) {
	if ref == "" {
		return rtl.UndefConst(width), nil
	}
	//
	bits, ok := rtl.ParseConst(ref)
	if !ok {
		return nil, fmt.Errorf("bad constant %q", ref)
	}
	//
	return bits, nil
}

func buildMemory(design *rtl.Design, md Memory) (rtl.Mem, error) {
	mem := rtl.Mem{
		Module:     md.Module,
		ID:         md.Name,
		Width:      md.Width,
		Size:       md.Depth,
		Attributes: make(map[string]rtl.Value),
	}
	//
	if mem.Module == "" {
		mem.Module = "top"
	}
	//
	for name, raw := range md.Attributes {
		switch val := raw.(type) {
		case int:
			mem.Attributes[name] = rtl.IntValue(val)
		case string:
			mem.Attributes[name] = rtl.StringValue(val)
		default:
			return mem, fmt.Errorf("memory %s: bad attribute %s", md.Name, name)
		}
	}
	//
	for addr, word := range md.Init {
		data, ok := rtl.ParseConst(word)
		if !ok {
			return mem, fmt.Errorf("memory %s: bad init word %q", md.Name, word)
		}
		//
		mem.Inits = append(mem.Inits, rtl.MemInit{Addr: addr, Data: data})
	}
	//
	nwr := len(md.WritePorts)
	//
	for _, pd := range md.WritePorts {
		port, err := buildWritePort(design, &mem, pd, nwr)
		if err != nil {
			return mem, fmt.Errorf("memory %s: %w", md.Name, err)
		}
		//
		mem.WrPorts = append(mem.WrPorts, port)
	}
	//
	for _, pd := range md.ReadPorts {
		port, err := buildReadPort(design, &mem, pd, nwr)
		if err != nil {
			return mem, fmt.Errorf("memory %s: %w", md.Name, err)
		}
		//
		mem.RdPorts = append(mem.RdPorts, port)
	}
	//
	return mem, nil
}

func buildWritePort(design *rtl.Design, mem *rtl.Mem, pd WritePort, nwr int) (rtl.MemWrPort, error) {
	port := rtl.MemWrPort{
		ClkPolarity: pd.ClkPolarity == nil || *pd.ClkPolarity,
		ClkEnable:   pd.ClkEnable == nil || *pd.ClkEnable,
		WideLog2:    pd.WideLog2,
		Priority:    intsToBitset(pd.Priority, nwr),
	}
	//
	var err error
	//
	if port.Clk, err = resolveSig(design, orDefault(pd.Clk, "0")); err != nil {
		return port, err
	}
	//
	if port.En, err = resolveEn(design, pd.En, mem.Width); err != nil {
		return port, err
	}
	//
	if port.Addr, err = resolveSig(design, pd.Addr); err != nil {
		return port, err
	}
	//
	if port.Data, err = resolveData(design, pd.Data, mem.Width); err != nil {
		return port, err
	}
	//
	return port, nil
}

func buildReadPort(design *rtl.Design, mem *rtl.Mem, pd ReadPort, nwr int) (rtl.MemRdPort, error) {
	port := rtl.MemRdPort{
		ClkPolarity:  pd.ClkPolarity == nil || *pd.ClkPolarity,
		ClkEnable:    pd.Clk != "",
		CeOverSrst:   pd.CeOverSrst,
		WideLog2:     pd.WideLog2,
		Transparency: intsToBitset(pd.Transparent, nwr),
		CollisionX:   intsToBitset(pd.CollisionX, nwr),
	}
	//
	var err error
	//
	if port.Clk, err = resolveSig(design, orDefault(pd.Clk, "0")); err != nil {
		return port, err
	}
	//
	if port.En, err = resolveSig(design, orDefault(pd.En, "1")); err != nil {
		return port, err
	}
	//
	if port.Addr, err = resolveSig(design, pd.Addr); err != nil {
		return port, err
	}
	//
	if port.Data, err = resolveData(design, pd.Data, mem.Width); err != nil {
		return port, err
	}
	//
	if port.InitValue, err = resolveValue(pd.Init, mem.Width); err != nil {
		return port, err
	}
	//
	if port.Arst, err = resolveBit(design, pd.Arst); err != nil {
		return port, err
	}
	//
	if port.ArstValue, err = resolveValue(pd.ArstValue, mem.Width); err != nil {
		return port, err
	}
	//
	if port.Srst, err = resolveBit(design, pd.Srst); err != nil {
		return port, err
	}
	//
	if port.SrstValue, err = resolveValue(pd.SrstValue, mem.Width); err != nil {
		return port, err
	}
	//
	return port, nil
}

// resolveEn resolves a write enable, replicating a single-bit reference to
// the full word width.  An absent enable means always-on.
func resolveEn(design *rtl.Design, ref string, width int) (rtl.SigSpec, error) {
	sig, err := resolveSig(design, orDefault(ref, "1"))
	if err != nil {
		return nil, err
	}
	//
	if len(sig) == 1 && width > 1 {
		return rtl.RepeatBit(sig[0], width), nil
	}
	//
	return sig, nil
}

// resolveData resolves a data signal, using a fully undefined constant when
// the description leaves it out.
func resolveData(design *rtl.Design, ref string, width int) (rtl.SigSpec, error) {
	if ref == "" {
		return rtl.ConstSig(rtl.UndefConst(width)), nil
	}
	//
	return resolveSig(design, ref)
}

func orDefault(ref string, def string) string {
	if ref == "" {
		return def
	}

	return ref
}

func intsToBitset(indices []int, size int) *bitset.BitSet {
	bits := bitset.New(uint(size))
	for _, i := range indices {
		bits.Set(uint(i))
	}

	return bits
}
