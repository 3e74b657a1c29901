// Package testdef loads debugger test definitions from annotated source files.
//
// A test source carries its script in a /*** ***/ block and marks breakpoint lines
// with a trailing "#break" comment:
//
//	fn main() {
//	    let x = 42;
//	    zzz(); // #break
//	}
//
//	/***
//	#if gdb
//	  print x
//	  #check $1 = 42
//	***/
package testdef

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/solo-io/dbt/pkg/script"
)

// BreakMarker marks a source line as a breakpoint location.
const BreakMarker = "#break"

type Breakpoint struct {
	// LineIndex is 0-based
	LineIndex int
}

type Definition struct {
	Name        string
	Path        string
	Script      *script.Script
	Breakpoints []Breakpoint
}

// FileName is the base name of the test source, as used in breakpoint commands.
func (d *Definition) FileName() string {
	return filepath.Base(d.Path)
}

func New(path, name string, s *script.Script, bps []Breakpoint) *Definition {
	return &Definition{Name: name, Path: path, Script: s, Breakpoints: bps}
}

// Load reads and parses a single test source. The test is named after path.
func Load(path string) (*Definition, error) {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading test %s", path)
	}
	return Parse(path, string(src))
}

func Parse(path, source string) (*Definition, error) {
	s, err := script.ParseSource(source)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing test %s", path)
	}
	return New(path, filepath.ToSlash(path), s, FindBreakpoints(source)), nil
}

// FindBreakpoints returns a breakpoint for every line whose trailing comment is BreakMarker.
func FindBreakpoints(source string) []Breakpoint {
	var bps []Breakpoint
	for i, line := range strings.Split(source, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if !strings.HasSuffix(line, BreakMarker) {
			continue
		}
		comment := strings.TrimSpace(strings.TrimSuffix(line, BreakMarker))
		if strings.HasSuffix(comment, "//") || strings.HasSuffix(comment, "#") {
			bps = append(bps, Breakpoint{LineIndex: i})
		}
	}
	return bps
}

// Discover loads every file under root whose extension is in exts.
// root may also name a single file, which is loaded regardless of its extension.
func Discover(root string, exts []string) ([]*Definition, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		def, err := Load(root)
		if err != nil {
			return nil, err
		}
		return []*Definition{def}, nil
	}

	var defs []*Definition
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !hasExt(path, exts) {
			return nil
		}
		def, err := Load(path)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"test": def.Name, "breakpoints": len(def.Breakpoints)}).Debug("loaded test")
		defs = append(defs, def)
		return nil
	})
	return defs, err
}

func hasExt(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if ext == "."+strings.TrimPrefix(e, ".") {
			return true
		}
	}
	return false
}
