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
package rtl

import (
	"fmt"
	"strconv"
)

// Value is a small constant carried by attributes and library options.  It is
// either an integer or a string.  Values are comparable with ==, which is
// relied upon by the option algebra.
type Value struct {
	str   string
	num   int
	isStr bool
}

// IntValue constructs an integer value.
func IntValue(n int) Value {
	return Value{num: n}
}

// StringValue constructs a string value.
func StringValue(s string) Value {
	return Value{str: s, isStr: true}
}

// IsString determines whether this value holds a string payload.
func (v Value) IsString() bool {
	return v.isStr
}

// Int returns the integer payload of this value.
func (v Value) Int() int {
	if v.isStr {
		panic("string value has no integer payload")
	}

	return v.num
}

// Str returns the string payload of this value.
func (v Value) Str() string {
	if !v.isStr {
		panic("integer value has no string payload")
	}

	return v.str
}

// String renders this value in the syntax accepted by the library parser.
func (v Value) String() string {
	if v.isStr {
		return fmt.Sprintf("%q", v.str)
	}

	return strconv.Itoa(v.num)
}
