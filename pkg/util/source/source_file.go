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
package source

import (
	"fmt"
	"os"
)

// ReadFiles reads a given set of source files, or produces an error.
func ReadFiles(filenames ...string) ([]*File, error) {
	files := make([]*File, len(filenames))
	//
	for i, n := range filenames {
		bytes, err := os.ReadFile(n)
		if err != nil {
			return nil, err
		}
		//
		files[i] = NewSourceFile(n, bytes)
	}
	//
	return files, nil
}

// File represents a given source file (typically stored on disk).
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	// Convert bytes into runes for easier parsing
	contents := []rune(string(bytes))
	return &File{filename, contents}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// LineNumber determines the line number (counting from 1) enclosing a given
// character offset.
func (s *File) LineNumber(offset int) int {
	num := 1
	//
	for i := 0; i < len(s.contents) && i < offset; i++ {
		if s.contents[i] == '\n' {
			num++
		}
	}
	//
	return num
}

// SyntaxError is a structured error which retains the span of the original
// text where the error arose, such that useful diagnostics can be reported.
type SyntaxError struct {
	file *File
	// Span of original text on which this error is reported.
	span Span
	// Message to be reported.
	msg string
}

// File returns the source file on which this error is reported.
func (p *SyntaxError) File() *File {
	return p.file
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the builtin error interface, reporting the error in the
// conventional "file:line: message" form.
func (p *SyntaxError) Error() string {
	line := p.file.LineNumber(p.span.Start())
	return fmt.Sprintf("%s:%d: %s", p.file.Filename(), line, p.msg)
}
