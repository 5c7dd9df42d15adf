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
package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zchn/yosys/pkg/memdesc"
	"github.com/zchn/yosys/pkg/memmap"
	"github.com/zchn/yosys/pkg/ramlib"
	"github.com/zchn/yosys/pkg/rtl"
	"github.com/zchn/yosys/pkg/util/source"
)

var mapCmd = &cobra.Command{
	Use:   "map [flags]",
	Short: "map memories to RAM primitives.",
	Long: `Map each memory of a given description against the RAM cell types of the
	 given library files, reporting the feasible placements together with the
	 logic which would have to be emulated around each.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		libFiles := GetStringArray(cmd, "lib")
		defines := GetStringArray(cmd, "define")
		memFile := GetString(cmd, "mem")
		// Parse the library files, in order.
		lib := ReadLibraryFiles(libFiles, defines)
		// Load the memories to be mapped.
		design, mems, err := memdesc.LoadFile(memFile)
		if err != nil {
			log.Fatal(err)
		}
		//
		worker := memmap.NewWorker(design)
		//
		for i := range mems {
			mapping, err := memmap.MapMemory(worker, &mems[i], lib)
			if err != nil {
				log.Fatal(err)
			}
			//
			printMapping(lib, &mems[i], mapping)
		}
	},
}

// ReadLibraryFiles parses a set of library files under a set of defines into
// one library, exiting on the first syntax error.
func ReadLibraryFiles(filenames []string, defines []string) *ramlib.Library {
	lib := ramlib.NewLibrary(defines)
	//
	files, err := source.ReadFiles(filenames...)
	if err != nil {
		log.Fatal(err)
	}
	//
	for _, file := range files {
		if err := ramlib.Parse(file, lib); err != nil {
			log.Fatal(err.Error())
		}
	}
	//
	lib.Prepare()
	//
	return lib
}

// printMapping reports the outcome of planning one memory.
func printMapping(lib *ramlib.Library, mem *rtl.Mem, mapping *memmap.Mapping) {
	cfgs := mapping.Configs()
	//
	switch {
	case mapping.Kind() == ramlib.RamLogic:
		fmt.Printf("%s.%s: mapped to soft logic by request\n", mem.Module, mem.ID)
		return
	case len(cfgs) == 0 && mapping.LogicOK():
		fmt.Printf("%s.%s: no feasible RAM mapping, using logic fallback\n", mem.Module, mem.ID)
		return
	case len(cfgs) == 0:
		fmt.Printf("%s.%s: no feasible RAM mapping\n", mem.Module, mem.ID)
		return
	}
	//
	fmt.Printf("%s.%s: %d feasible configuration(s)\n", mem.Module, mem.ID, len(cfgs))
	//
	for i := range cfgs {
		cfg := &cfgs[i]
		rdef := &lib.RamDefs[cfg.RamDef]
		emu := countEmulations(cfg)
		//
		if emu == 0 {
			fmt.Printf("  - %s\n", rdef.ID)
		} else {
			fmt.Printf("  - %s (%d emulated feature(s))\n", rdef.ID, emu)
		}
	}
}

// countEmulations totals the features a configuration would synthesize
// outside the primitive.
func countEmulations(cfg *memmap.MemConfig) int {
	count := 0
	//
	for i := range cfg.WrPorts {
		count += len(cfg.WrPorts[i].EmuPrio)
	}
	//
	for i := range cfg.RdPorts {
		pcfg := &cfg.RdPorts[i]
		//
		for _, flag := range []bool{
			pcfg.EmuSync, pcfg.EmuEn, pcfg.EmuArst,
			pcfg.EmuSrst, pcfg.EmuInit, pcfg.EmuSrstEnPrio,
		} {
			if flag {
				count++
			}
		}
		//
		count += len(pcfg.EmuTrans)
	}
	//
	return count
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(mapCmd)
	mapCmd.Flags().StringArrayP("lib", "l", []string{}, "RAM library file (can be passed more than once).")
	mapCmd.Flags().StringArrayP("define", "D", []string{}, "enable a library condition (can be passed more than once).")
	mapCmd.Flags().StringP("mem", "m", "", "memory description file.")
	mapCmd.MarkFlagRequired("lib")
	mapCmd.MarkFlagRequired("mem")
}
