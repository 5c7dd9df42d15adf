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
package memdesc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zchn/yosys/pkg/rtl"
)

func loadString(t *testing.T, text string) (*rtl.Design, []rtl.Mem) {
	t.Helper()
	//
	filename := filepath.Join(t.TempDir(), "mem.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(text), 0o600))
	//
	design, mems, err := LoadFile(filename)
	require.NoError(t, err)
	//
	return design, mems
}

func TestLoad_SimpleMemory(t *testing.T) {
	design, mems := loadString(t, `
signals:
  - {name: clk}
  - {name: we}
  - {name: addr, width: 10}
memories:
  - name: ram1
    width: 8
    depth: 1024
    attributes: {ram_style: "block", cascade: 1}
    init: ["00000001", "xxxxxxxx"]
    write_ports:
      - {clk: clk, en: we, addr: addr}
    read_ports:
      - {clk: clk, addr: addr, transparent: [0]}
`)
	//
	require.Len(t, mems, 1)
	mem := mems[0]
	assert.Equal(t, "top", mem.Module)
	assert.Equal(t, "ram1", mem.ID)
	assert.Equal(t, 8, mem.Width)
	assert.Equal(t, 1024, mem.Size)
	assert.Equal(t, rtl.StringValue("block"), mem.Attributes["ram_style"])
	assert.Equal(t, rtl.IntValue(1), mem.Attributes["cascade"])
	//
	require.Len(t, mem.Inits, 2)
	assert.True(t, mem.Inits[0].Data.HasOne())
	assert.True(t, mem.Inits[1].Data.FullyUndef())
	//
	require.Len(t, mem.WrPorts, 1)
	wr := mem.WrPorts[0]
	assert.True(t, wr.ClkEnable)
	assert.True(t, wr.ClkPolarity)
	// A single-bit enable is replicated over the word width.
	require.Len(t, wr.En, 8)
	assert.Equal(t, wr.En[0], wr.En[7])
	require.Len(t, wr.Addr, 10)
	//
	require.Len(t, mem.RdPorts, 1)
	rd := mem.RdPorts[0]
	assert.True(t, rd.ClkEnable)
	assert.True(t, rd.Transparency.Test(0))
	assert.False(t, rd.CollisionX.Test(0))
	// Unspecified values default to constant one / fully undefined.
	assert.True(t, rd.En.IsConstOne())
	assert.True(t, rd.InitValue.FullyUndef())
	assert.Equal(t, rtl.ConstBit(rtl.S0), rd.Arst)
	//
	_, ok := design.Wire("clk")
	assert.True(t, ok)
}

func TestLoad_GatesAndAsyncPorts(t *testing.T) {
	design, mems := loadString(t, `
signals:
  - {name: we}
  - {name: re}
  - {name: addr, width: 5}
gates:
  - {op: not, y: re, a: we}
memories:
  - name: regfile
    width: 2
    depth: 32
    read_ports:
      - {addr: addr, en: re}
`)
	//
	require.Len(t, design.Cells(), 1)
	assert.Equal(t, rtl.CellNot, design.Cells()[0].Kind)
	// A port without a clock is asynchronous.
	rd := mems[0].RdPorts[0]
	assert.False(t, rd.ClkEnable)
	//
	wire, _ := design.Wire("re")
	assert.True(t, rd.En.Equal(rtl.WireSig(wire)))
}

func TestLoad_ConstantReferences(t *testing.T) {
	_, mems := loadString(t, `
signals:
  - {name: addr, width: 4}
memories:
  - name: rom
    width: 4
    depth: 16
    read_ports:
      - {addr: addr, en: "1", srst: "0"}
`)
	//
	rd := mems[0].RdPorts[0]
	assert.True(t, rd.En.IsConstOne())
	assert.Equal(t, rtl.ConstBit(rtl.S0), rd.Srst)
}

func TestLoad_Errors(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "mem.yaml")
	//
	bad := []string{
		"memories:\n  - name: m\n    width: 2\n    depth: 4\n    read_ports:\n      - {addr: nosuch}\n",
		"gates:\n  - {op: nand, y: x, a: x}\n",
		"memories:\n  - name: m\n    width: 2\n    depth: 4\n    init: [\"01z\"]\n",
		"nonsense: true\n",
	}
	//
	for _, text := range bad {
		require.NoError(t, os.WriteFile(filename, []byte(text), 0o600))
		_, _, err := LoadFile(filename)
		assert.Error(t, err, "input: %s", text)
	}
}
