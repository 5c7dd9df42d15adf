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
	"strconv"
	"unicode"

	"github.com/zchn/yosys/pkg/rtl"
	"github.com/zchn/yosys/pkg/util/source"
)

// Parse parses one library file into a given library.  Files are parsed in
// the order given on the command line, each appending its RAM definitions.
func Parse(file *source.File, lib *Library) *source.SyntaxError {
	p := newParser(file, lib)
	//
	for !p.atEOF() {
		if err := p.parseTopItem(); err != nil {
			return err
		}
	}
	//
	return nil
}

// token is a single lexeme together with its location in the source file.
type token struct {
	text string
	span source.Span
}

// scan splits a file into tokens.  Tokens are maximal runs of non-whitespace
// characters, except that `#` starts a comment running to the end of the
// line, and a single trailing `;` is split off as its own token.
func scan(file *source.File) []token {
	var (
		tokens []token
		text   = file.Contents()
	)
	//
	for i := 0; i < len(text); {
		if unicode.IsSpace(text[i]) {
			i++
			continue
		}
		//
		if text[i] == '#' {
			for i < len(text) && text[i] != '\n' {
				i++
			}
			//
			continue
		}
		// Scan one token.  A `#` only opens a comment at the start of a
		// token.
		start := i
		for i < len(text) && !unicode.IsSpace(text[i]) {
			i++
		}
		//
		tok := token{string(text[start:i]), source.NewSpan(start, i)}
		// Split off a trailing semicolon.
		if n := len(tok.text); n > 1 && tok.text[n-1] == ';' {
			tokens = append(tokens,
				token{tok.text[:n-1], source.NewSpan(start, i-1)},
				token{";", source.NewSpan(i-1, i)})
		} else {
			tokens = append(tokens, tok)
		}
	}
	//
	return tokens
}

// scopeEntry is one binding pushed by an option or portoption statement.
type scopeEntry struct {
	name string
	val  rtl.Value
}

// parser holds the state of parsing a single library file.
type parser struct {
	file *source.File
	lib  *Library
	//
	tokens []token
	index  int
	// Option and portoption scope stacks in force.
	optionStack     []scopeEntry
	portoptionStack []scopeEntry
	// RAM definition and port group under construction.
	ram  RamDef
	port PortGroupDef
	// Whether capabilities are currently being emitted.  Cleared inside
	// ifdef/ifndef regions whose condition does not hold.
	active bool
}

func newParser(file *source.File, lib *Library) *parser {
	return &parser{
		file:   file,
		lib:    lib,
		tokens: scan(file),
		active: true,
	}
}

func (p *parser) atEOF() bool {
	return p.index >= len(p.tokens)
}

// peekToken returns the next token without consuming it, or "" at EOF.
func (p *parser) peekToken() string {
	if p.atEOF() {
		return ""
	}

	return p.tokens[p.index].text
}

// getToken consumes and returns the next token, or "" at EOF.
func (p *parser) getToken() string {
	res := p.peekToken()
	if !p.atEOF() {
		p.index++
	}

	return res
}

// span of the most recently consumed token, or of the end of the file.
func (p *parser) lastSpan() source.Span {
	if p.index > 0 && p.index <= len(p.tokens) {
		return p.tokens[p.index-1].span
	}
	//
	n := len(p.file.Contents())
	//
	return source.NewSpan(n, n)
}

// errorf constructs a syntax error at the most recently consumed token.
func (p *parser) errorf(format string, args ...any) *source.SyntaxError {
	return p.file.SyntaxError(p.lastSpan(), fmt.Sprintf(format, args...))
}

// errorAt constructs a syntax error at a given span.
func (p *parser) errorAt(span source.Span, format string, args ...any) *source.SyntaxError {
	return p.file.SyntaxError(span, fmt.Sprintf(format, args...))
}

func (p *parser) getID() (string, *source.SyntaxError) {
	tok := p.getToken()
	if tok == "" || (tok[0] != '$' && tok[0] != '\\') {
		return "", p.errorf("expected id string, got `%s`.", tok)
	}

	return tok, nil
}

func (p *parser) getName() (string, *source.SyntaxError) {
	tok := p.getToken()
	valid := tok != "" && (unicode.IsLetter(rune(tok[0])) || tok[0] == '_')
	//
	for _, c := range tok {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			valid = false
		}
	}
	//
	if !valid {
		return "", p.errorf("expected name, got `%s`.", tok)
	}
	//
	return tok, nil
}

func (p *parser) getString() (string, *source.SyntaxError) {
	tok := p.getToken()
	if len(tok) < 2 || tok[0] != '"' || tok[len(tok)-1] != '"' {
		return "", p.errorf("expected string, got `%s`.", tok)
	}

	return tok[1 : len(tok)-1], nil
}

func (p *parser) peekString() bool {
	tok := p.peekToken()
	return tok != "" && tok[0] == '"'
}

func (p *parser) getInt() (int, *source.SyntaxError) {
	tok := p.getToken()
	res, err := strconv.ParseInt(tok, 0, 32)
	//
	if tok == "" || err != nil {
		return 0, p.errorf("expected int, got `%s`.", tok)
	}
	//
	return int(res), nil
}

func (p *parser) peekInt() bool {
	tok := p.peekToken()
	return tok != "" && unicode.IsDigit(rune(tok[0]))
}

func (p *parser) getSemi() *source.SyntaxError {
	if tok := p.getToken(); tok != ";" {
		return p.errorf("expected `;`, got `%s`.", tok)
	}

	return nil
}

func (p *parser) getValue() (rtl.Value, *source.SyntaxError) {
	if p.peekString() {
		s, err := p.getString()
		if err != nil {
			return rtl.Value{}, err
		}
		//
		return rtl.StringValue(s), nil
	}
	//
	n, err := p.getInt()
	if err != nil {
		return rtl.Value{}, err
	}
	//
	return rtl.IntValue(n), nil
}

// options collects the option bindings currently in scope.
func (p *parser) options() Options {
	res := make(Options, len(p.optionStack))
	for _, it := range p.optionStack {
		res[it.name] = it.val
	}

	return res
}

// portoptions collects the portoption bindings currently in scope.
func (p *parser) portoptions() Options {
	res := make(Options, len(p.portoptionStack))
	for _, it := range p.portoptionStack {
		res[it.name] = it.val
	}

	return res
}

// addCap records a capability under the scopes currently in force, unless a
// surrounding ifdef has deactivated emission.
func addCap[T any](p *parser, caps *Caps[T], val T) {
	if p.active {
		*caps = append(*caps, Capability[T]{val, p.options(), p.portoptions()})
	}
}

// parseBlock parses either a single item, or a braced sequence of items.
func (p *parser) parseBlock(item func() *source.SyntaxError) *source.SyntaxError {
	if p.peekToken() != "{" {
		return item()
	}
	//
	p.getToken()
	//
	for p.peekToken() != "}" {
		if err := item(); err != nil {
			return err
		}
	}
	//
	p.getToken()
	//
	return nil
}

// parseIfdef handles `ifdef`/`ifndef` (polarity true resp. false) together
// with an optional `else` block.  The active flag of a nested region is the
// conjunction of the enclosing region's flag and the condition; `else`
// inverts the condition but remains gated by the enclosing flag.
func (p *parser) parseIfdef(polarity bool, item func() *source.SyntaxError) *source.SyntaxError {
	save := p.active
	//
	name, err := p.getName()
	if err != nil {
		return err
	}
	//
	p.active = save && (p.lib.Defined(name) == polarity)
	//
	if err := p.parseBlock(item); err != nil {
		return err
	}
	//
	if p.peekToken() == "else" {
		p.getToken()
		p.active = !p.active && save
		//
		if err := p.parseBlock(item); err != nil {
			return err
		}
	}
	//
	p.active = save
	//
	return nil
}

// parseOption handles an `option`/`portoption` scope around a nested block.
func (p *parser) parseOption(stack *[]scopeEntry, item func() *source.SyntaxError) *source.SyntaxError {
	name, err := p.getString()
	if err != nil {
		return err
	}
	//
	val, err := p.getValue()
	if err != nil {
		return err
	}
	//
	*stack = append(*stack, scopeEntry{name, val})
	err = p.parseBlock(item)
	*stack = (*stack)[:len(*stack)-1]
	//
	return err
}

func (p *parser) parseTopItem() *source.SyntaxError {
	switch tok := p.getToken(); tok {
	case "ifdef":
		return p.parseIfdef(true, p.parseTopItem)
	case "ifndef":
		return p.parseIfdef(false, p.parseTopItem)
	case "ram":
		return p.parseRam()
	case "":
		return p.errorf("unexpected EOF while parsing top item.")
	default:
		return p.errorf("unknown top-level item `%s`.", tok)
	}
}

func (p *parser) parseRam() *source.SyntaxError {
	origin := p.lastSpan()
	p.ram = RamDef{}
	//
	switch tok := p.getToken(); tok {
	case "distributed":
		p.ram.Kind = RamDistributed
	case "block":
		p.ram.Kind = RamBlock
	case "huge":
		p.ram.Kind = RamHuge
	default:
		return p.errorf("expected `distributed`, `block`, or `huge`, got `%s`.", tok)
	}
	//
	id, err := p.getID()
	if err != nil {
		return err
	}
	//
	p.ram.ID = id
	//
	if err := p.parseBlock(p.parseRamItem); err != nil {
		return err
	}
	//
	if !p.active {
		return nil
	}
	// Sanity check the definition is complete.
	if len(p.ram.Dims) == 0 {
		return p.errorAt(origin, "`dims` capability should be specified.")
	}
	//
	if len(p.ram.Ports) == 0 {
		return p.errorAt(origin, "at least one port group should be specified.")
	}
	// A named clock must not mix anyedge with posedge/negedge.
	anyedge := make(map[string]bool)
	pnedge := make(map[string]bool)
	//
	for _, port := range p.ram.Ports {
		for _, def := range port.Val.Clock {
			if def.Val.Name == "" {
				continue
			}
			//
			if def.Val.Kind == ClkAnyedge {
				anyedge[def.Val.Name] = true
			} else {
				pnedge[def.Val.Name] = true
			}
		}
	}
	//
	for name := range pnedge {
		if anyedge[name] {
			return p.errorAt(origin,
				"named clock \"%s\" used with both posedge/negedge and anyedge clocks.", name)
		}
	}
	//
	p.lib.RamDefs = append(p.lib.RamDefs, p.ram)
	//
	return nil
}

func (p *parser) parseRamItem() *source.SyntaxError {
	switch tok := p.getToken(); tok {
	case "ifdef":
		return p.parseIfdef(true, p.parseRamItem)
	case "ifndef":
		return p.parseIfdef(false, p.parseRamItem)
	case "option":
		return p.parseOption(&p.optionStack, p.parseRamItem)
	case "dims":
		var dims DimsDef
		var err *source.SyntaxError
		//
		if dims.ABits, err = p.getInt(); err != nil {
			return err
		}
		//
		if dims.DBits, err = p.getInt(); err != nil {
			return err
		}
		//
		if err := p.getSemi(); err != nil {
			return err
		}
		//
		addCap(p, &p.ram.Dims, dims)
		//
		return nil
	case "init":
		var kind InitKind
		//
		switch tok := p.getToken(); tok {
		case "zero":
			kind = InitZero
		case "any":
			kind = InitAny
		case "none":
			kind = InitNone
		default:
			return p.errorf("expected `zero`, `any`, or `none`, got `%s`.", tok)
		}
		//
		if err := p.getSemi(); err != nil {
			return err
		}
		//
		addCap(p, &p.ram.Init, kind)
		//
		return nil
	case "style":
		for {
			style, err := p.getString()
			if err != nil {
				return err
			}
			//
			addCap(p, &p.ram.Style, style)
			//
			if !p.peekString() {
				break
			}
		}
		//
		return p.getSemi()
	case "port":
		return p.parsePort()
	case "":
		return p.errorf("unexpected EOF while parsing ram item.")
	default:
		return p.errorf("unknown ram-level item `%s`.", tok)
	}
}

func (p *parser) parsePort() *source.SyntaxError {
	origin := p.lastSpan()
	p.port = PortGroupDef{}
	//
	switch tok := p.getToken(); tok {
	case "ar":
		p.port.Kind = PortAr
	case "sr":
		p.port.Kind = PortSr
	case "sw":
		p.port.Kind = PortSw
	case "arsw":
		p.port.Kind = PortArsw
	case "srsw":
		p.port.Kind = PortSrsw
	default:
		return p.errorf("expected `ar`, `sr`, `sw`, `arsw`, or `srsw`, got `%s`.", tok)
	}
	//
	for {
		name, err := p.getString()
		if err != nil {
			return err
		}
		//
		p.port.Names = append(p.port.Names, name)
		//
		if !p.peekString() {
			break
		}
	}
	//
	if err := p.parseBlock(p.parsePortItem); err != nil {
		return err
	}
	//
	if !p.active {
		return nil
	}
	// Add defaults for some capabilities.
	if p.port.Kind != PortAr && len(p.port.Clock) == 0 {
		addCap(p, &p.port.Clock, ClockDef{Kind: ClkAnyedge})
	}
	//
	if len(p.port.Width) == 0 {
		addCap(p, &p.port.Width, 1)
	}
	// Refuse to guess this one — there is no "safe" default.
	if p.port.Kind.IsSyncRead() && len(p.port.RdEn) == 0 {
		return p.errorAt(origin, "`rden` capability should be specified.")
	}
	//
	addCap(p, &p.ram.Ports, p.port)
	//
	return nil
}

//nolint:gocyclo
func (p *parser) parsePortItem() *source.SyntaxError {
	switch tok := p.getToken(); tok {
	case "ifdef":
		return p.parseIfdef(true, p.parsePortItem)
	case "ifndef":
		return p.parseIfdef(false, p.parsePortItem)
	case "option":
		return p.parseOption(&p.optionStack, p.parsePortItem)
	case "portoption":
		return p.parseOption(&p.portoptionStack, p.parsePortItem)
	case "clock":
		if p.port.Kind == PortAr {
			return p.errorf("`clock` not allowed in async read port.")
		}
		//
		var def ClockDef
		//
		switch tok := p.getToken(); tok {
		case "anyedge":
			def.Kind = ClkAnyedge
		case "posedge":
			def.Kind = ClkPosedge
		case "negedge":
			def.Kind = ClkNegedge
		default:
			return p.errorf("expected `posedge`, `negedge`, or `anyedge`, got `%s`.", tok)
		}
		//
		if p.peekString() {
			name, err := p.getString()
			if err != nil {
				return err
			}
			//
			def.Name = name
		}
		//
		if err := p.getSemi(); err != nil {
			return err
		}
		//
		addCap(p, &p.port.Clock, def)
		//
		return nil
	case "width":
		for {
			width, err := p.getInt()
			if err != nil {
				return err
			}
			//
			addCap(p, &p.port.Width, width)
			//
			if !p.peekInt() {
				break
			}
		}
		//
		return p.getSemi()
	case "mixwidth":
		if err := p.getSemi(); err != nil {
			return err
		}
		//
		addCap(p, &p.port.MixWidth, Empty{})
		//
		return nil
	case "addrce":
		if err := p.getSemi(); err != nil {
			return err
		}
		//
		addCap(p, &p.port.AddrCE, Empty{})
		//
		return nil
	case "rden":
		if !p.port.Kind.IsSyncRead() {
			return p.errorf("`rden` only allowed on sync read ports.")
		}
		//
		var val RdEnKind
		//
		switch tok := p.getToken(); tok {
		case "none":
			val = RdEnNone
		case "any":
			val = RdEnAny
		case "write-implies":
			if p.port.Kind != PortSrsw {
				return p.errorf("`write-implies` only makes sense for read+write ports.")
			}
			//
			val = RdEnWriteImplies
		case "write-excludes":
			if p.port.Kind != PortSrsw {
				return p.errorf("`write-excludes` only makes sense for read+write ports.")
			}
			//
			val = RdEnWriteExcludes
		default:
			return p.errorf(
				"expected `none`, `any`, `write-implies`, or `write-excludes`, got `%s`.", tok)
		}
		//
		if err := p.getSemi(); err != nil {
			return err
		}
		//
		addCap(p, &p.port.RdEn, val)
		//
		return nil
	case "rdinitval", "rdsrstval", "rdarstval":
		if !p.port.Kind.IsSyncRead() {
			return p.errorf("`%s` only allowed on sync read ports.", tok)
		}
		//
		var def ResetValDef
		//
		switch tok {
		case "rdinitval":
			def.Kind = ResetInit
		case "rdsrstval":
			def.Kind = ResetSync
		case "rdarstval":
			def.Kind = ResetAsync
		}
		//
		switch p.peekToken() {
		case "none":
			def.ValKind = RstValNone
			p.getToken()
		case "zero":
			def.ValKind = RstValZero
			p.getToken()
		default:
			name, err := p.getString()
			if err != nil {
				return err
			}
			//
			def.ValKind = RstValNamed
			def.Name = name
		}
		//
		if err := p.getSemi(); err != nil {
			return err
		}
		//
		addCap(p, &p.port.RdRstVal, def)
		//
		return nil
	case "rdsrstmode":
		if !p.port.Kind.IsSyncRead() {
			return p.errorf("`rdsrstmode` only allowed on sync read ports.")
		}
		//
		var val SrstKind
		//
		switch tok := p.getToken(); tok {
		case "en-over-srst":
			val = EnOverSrst
		case "srst-over-en":
			val = SrstOverEn
		case "any":
			val = SrstAny
		default:
			return p.errorf("expected `en-over-srst`, `srst-over-en`, or `any`, got `%s`.", tok)
		}
		//
		if err := p.getSemi(); err != nil {
			return err
		}
		//
		addCap(p, &p.port.RdSrstMode, val)
		//
		return nil
	case "wrbe":
		if !p.port.Kind.IsWrite() {
			return p.errorf("`wrbe` only allowed on write ports.")
		}
		//
		unit, err := p.getInt()
		if err != nil {
			return err
		}
		//
		addCap(p, &p.port.WrBE, unit)
		//
		return p.getSemi()
	case "wrprio":
		if !p.port.Kind.IsWrite() {
			return p.errorf("`wrprio` only allowed on write ports.")
		}
		//
		for {
			name, err := p.getString()
			if err != nil {
				return err
			}
			//
			addCap(p, &p.port.WrPrio, name)
			//
			if !p.peekString() {
				break
			}
		}
		//
		return p.getSemi()
	case "wrtrans":
		if !p.port.Kind.IsWrite() {
			return p.errorf("`wrtrans` only allowed on write ports.")
		}
		//
		var def WrTransDef
		//
		switch p.peekToken() {
		case "self":
			if p.port.Kind != PortSrsw {
				return p.errorf("`wrtrans self` only allowed on sync read + sync write ports.")
			}
			//
			def.TargetKind = TransSelf
			p.getToken()
		case "other":
			def.TargetKind = TransOther
			p.getToken()
		default:
			name, err := p.getString()
			if err != nil {
				return err
			}
			//
			def.TargetKind = TransNamed
			def.TargetName = name
		}
		//
		switch tok := p.getToken(); tok {
		case "new":
			def.Kind = TransNew
		case "old":
			def.Kind = TransOld
		default:
			return p.errorf("expected `new` or `old`, got `%s`.", tok)
		}
		//
		if err := p.getSemi(); err != nil {
			return err
		}
		//
		addCap(p, &p.port.WrTrans, def)
		//
		return nil
	case "wrcs":
		if !p.port.Kind.IsWrite() {
			return p.errorf("`wrcs` only allowed on write ports.")
		}
		//
		set, err := p.getInt()
		if err != nil {
			return err
		}
		//
		addCap(p, &p.port.WrCS, set)
		//
		return p.getSemi()
	case "":
		return p.errorf("unexpected EOF while parsing port item.")
	default:
		return p.errorf("unknown port-level item `%s`.", tok)
	}
}
