package script

import (
	"bufio"
	"fmt"
	"strings"
)

// Script blocks are embedded in test sources between these markers, each on its own line.
const (
	BlockStart = "/***"
	BlockEnd   = "***/"
)

// Directives
const (
	DirectiveIf             = "#if"
	DirectiveElse           = "#else"
	DirectiveCheck          = "#check"
	DirectiveCheckUnordered = "#check-unordered"
	DirectiveIgnoreTest     = "#ignore-test"
)

type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// ParseSource parses every script block found in source into one script.
func ParseSource(source string) (*Script, error) {
	res := &Script{}
	scan := bufio.NewScanner(strings.NewReader(source))
	lineno := 0
	inBlock := false
	blockStart := 0
	var block []string
	for scan.Scan() {
		lineno++
		trimmed := strings.TrimSpace(scan.Text())
		switch {
		case !inBlock && strings.HasPrefix(trimmed, BlockStart):
			inBlock = true
			blockStart = lineno + 1
			block = block[:0]
		case inBlock && strings.HasPrefix(trimmed, BlockEnd):
			inBlock = false
			s, err := Parse(strings.Join(block, "\n"), blockStart)
			if err != nil {
				return nil, err
			}
			res.Statements = append(res.Statements, s.Statements...)
		case inBlock:
			block = append(block, scan.Text())
		}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	if inBlock {
		return nil, &ParseError{Line: blockStart - 1, Msg: "script block is never closed"}
	}
	return res, nil
}

type srcLine struct {
	no     int
	indent int
	text   string
}

type parser struct {
	lines []srcLine
	pos   int
}

// Parse parses script text. firstLine is the line number of text's first line, used in errors.
// Nesting is expressed by indentation: the body of #if, #else and #check-unordered is
// indented deeper than the directive.
func Parse(text string, firstLine int) (*Script, error) {
	p := &parser{}
	for i, raw := range strings.Split(text, "\n") {
		raw = strings.TrimRight(raw, " \t\r")
		trimmed := strings.TrimLeft(raw, " \t")
		if trimmed == "" {
			continue
		}
		p.lines = append(p.lines, srcLine{no: firstLine + i, indent: len(raw) - len(trimmed), text: trimmed})
	}
	stmts, err := p.block(-1)
	if err != nil {
		return nil, err
	}
	return &Script{Statements: stmts}, nil
}

func (p *parser) block(parent int) ([]Statement, error) {
	var stmts []Statement
	indent := -1
	for p.pos < len(p.lines) {
		l := p.lines[p.pos]
		if l.indent <= parent {
			break
		}
		if indent < 0 {
			indent = l.indent
		}
		if l.indent != indent {
			return nil, errorf(l, "unexpected indentation")
		}
		p.pos++
		stmt, err := p.statement(l)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *parser) statement(l srcLine) (Statement, error) {
	directive, arg := splitDirective(l.text)
	switch directive {
	case DirectiveIf:
		if arg == "" {
			return nil, errorf(l, "%s needs a condition", DirectiveIf)
		}
		cond, err := CompileCondition(arg)
		if err != nil {
			return nil, errorf(l, "invalid condition %q: %v", arg, err)
		}
		body, err := p.block(l.indent)
		if err != nil {
			return nil, err
		}
		if len(body) == 0 {
			return nil, errorf(l, "%s without body", DirectiveIf)
		}
		stmt := &IfBlock{Condition: cond, Body: body}
		if p.pos < len(p.lines) {
			next := p.lines[p.pos]
			if next.indent == l.indent && next.text == DirectiveElse {
				p.pos++
				if stmt.Else, err = p.block(l.indent); err != nil {
					return nil, err
				}
			}
		}
		return stmt, nil
	case DirectiveElse:
		return nil, errorf(l, "%s without %s", DirectiveElse, DirectiveIf)
	case DirectiveCheck:
		if arg == "" {
			return nil, errorf(l, "%s needs a pattern", DirectiveCheck)
		}
		return &Check{Pattern: NewCheckPattern(arg)}, nil
	case DirectiveCheckUnordered:
		if arg != "" {
			return nil, errorf(l, "%s takes its patterns on the following indented lines", DirectiveCheckUnordered)
		}
		stmt := &CheckUnorderedBlock{}
		for p.pos < len(p.lines) && p.lines[p.pos].indent > l.indent {
			stmt.Patterns = append(stmt.Patterns, NewCheckPattern(p.lines[p.pos].text))
			p.pos++
		}
		if len(stmt.Patterns) == 0 {
			return nil, errorf(l, "%s without patterns", DirectiveCheckUnordered)
		}
		return stmt, nil
	case DirectiveIgnoreTest:
		stmt := &IgnoreTest{}
		if arg != "" {
			cond, err := CompileCondition(arg)
			if err != nil {
				return nil, errorf(l, "invalid condition %q: %v", arg, err)
			}
			stmt.Condition = cond
		}
		return stmt, nil
	default:
		// plain commands, and # lines that are no directive such as debugger comments
		return &Exec{Command: l.text}, nil
	}
}

// splitDirective returns ("", "") for lines that don't start with #.
func splitDirective(text string) (directive, arg string) {
	if !strings.HasPrefix(text, "#") {
		return "", ""
	}
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		return text[:i], strings.TrimSpace(text[i+1:])
	}
	return text, ""
}

func errorf(l srcLine, format string, args ...interface{}) error {
	return &ParseError{Line: l.no, Msg: fmt.Sprintf(format, args...)}
}
