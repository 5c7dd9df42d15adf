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

import "github.com/zchn/yosys/pkg/ramlib"

// optsApplied determines whether every binding of src is already present in
// dst with an identical value.
func optsApplied(dst ramlib.Options, src ramlib.Options) bool {
	for name, val := range src {
		if have, ok := dst[name]; !ok || have != val {
			return false
		}
	}

	return true
}

// applyOpts merges the bindings of src into dst, failing on the first
// disagreement with an existing binding.  On failure dst may be partially
// written; callers apply to a cloned configuration and discard it then.
func applyOpts(dst ramlib.Options, src ramlib.Options) bool {
	for name, val := range src {
		if have, ok := dst[name]; !ok {
			dst[name] = val
		} else if have != val {
			return false
		}
	}

	return true
}

// applyWrPortOpts merges a capability's options into the configuration and
// its portoptions into a given write port.
func applyWrPortOpts[T any](cfg *MemConfig, pidx int, cap ramlib.Capability[T]) bool {
	pcfg := &cfg.WrPorts[pidx]
	return applyOpts(cfg.Opts, cap.Opts) && applyOpts(pcfg.PortOpts, cap.PortOpts)
}

// applyRdPortOpts merges a capability's options into the configuration and
// its portoptions into a given read port.  For a read port sharing a write
// port, the portoptions route to the write port instead.
func applyRdPortOpts[T any](cfg *MemConfig, pidx int, cap ramlib.Capability[T]) bool {
	pcfg := &cfg.RdPorts[pidx]
	if pcfg.WrPort != -1 {
		return applyWrPortOpts(cfg, pcfg.WrPort, cap)
	}

	return applyOpts(cfg.Opts, cap.Opts) && applyOpts(pcfg.PortOpts, cap.PortOpts)
}

// wrPortOptsApplied determines whether a capability's options are already
// fully absorbed by the configuration and a given write port.
func wrPortOptsApplied[T any](cfg *MemConfig, pidx int, cap ramlib.Capability[T]) bool {
	pcfg := &cfg.WrPorts[pidx]
	return optsApplied(cfg.Opts, cap.Opts) && optsApplied(pcfg.PortOpts, cap.PortOpts)
}

// rdPortOptsApplied determines whether a capability's options are already
// fully absorbed by the configuration and a given read port.
func rdPortOptsApplied[T any](cfg *MemConfig, pidx int, cap ramlib.Capability[T]) bool {
	pcfg := &cfg.RdPorts[pidx]
	if pcfg.WrPort != -1 {
		return wrPortOptsApplied(cfg, pcfg.WrPort, cap)
	}

	return optsApplied(cfg.Opts, cap.Opts) && optsApplied(pcfg.PortOpts, cap.PortOpts)
}
