package dbt

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/solo-io/dbt/pkg/debuggers"
	"github.com/solo-io/dbt/pkg/debuggers/mock"
)

// VersionProbe recognizes debuggers from their version banner.
// Create it once with NewVersionProbe and pass it to where it is needed.
type VersionProbe struct {
	// examples:
	// GNU gdb (Ubuntu 9.2-0ubuntu1~20.04) 9.2
	// GNU gdb (GDB) 8.2.1
	gdb *regexp.Regexp
	// example: cdb version 10.0.21349.1004
	cdb *regexp.Regexp

	// exec runs the version command, replaceable in tests
	exec func(ctx context.Context, command string, args ...string) (*debuggers.Output, error)
}

func NewVersionProbe() *VersionProbe {
	return &VersionProbe{
		gdb:  regexp.MustCompile(`GNU\s+gdb\s+\(.+\)\s+(.+)`),
		cdb:  regexp.MustCompile(`cdb\s+version\s+([\d\.]+)`),
		exec: debuggers.Exec,
	}
}

func (p *VersionProbe) ExtractGdbVersion(line string) (string, bool) {
	return firstGroup(p.gdb, line)
}

func (p *VersionProbe) ExtractCdbVersion(line string) (string, bool) {
	return firstGroup(p.cdb, line)
}

func firstGroup(re *regexp.Regexp, line string) (string, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// VersionArg is the flag that makes command print its version.
func VersionArg(command string) string {
	name := strings.ToLower(filepath.Base(command))
	if strings.HasSuffix(name, "cdb.exe") || strings.HasSuffix(name, "cdb") {
		return "-version"
	}
	return "--version"
}

// InferFromCommand runs command to find out which debugger it is and its version.
func (p *VersionProbe) InferFromCommand(ctx context.Context, command string) (debuggers.Kind, string, error) {
	if command == mock.Command {
		return debuggers.Mock, "1.0", nil
	}

	out, err := p.exec(ctx, command, VersionArg(command))
	if err != nil {
		return 0, "", errors.Wrapf(err, "getting debugger version from %s", command)
	}
	if !out.ExitStatus.Success() {
		return 0, "", fmt.Errorf("failed to get debugger version from %s", command)
	}

	lines := append(splitLines(out.Stdout), splitLines(out.Stderr)...)
	for _, line := range lines {
		if version, ok := p.ExtractGdbVersion(line); ok {
			return debuggers.Gdb, version, nil
		}
		if version, ok := p.ExtractCdbVersion(line); ok {
			return debuggers.Cdb, version, nil
		}
	}

	return 0, "", fmt.Errorf("Could not infer debugger from command `%s`", command)
}

// InitDebuggers probes every command and attaches the matching preludes.
// All probe failures are reported together.
func (p *VersionProbe) InitDebuggers(ctx context.Context, commands []string, preludes []string) ([]*Debugger, error) {
	log.Info("Scanning debugger preludes")
	preludeMap := ParsePreludes(preludes)

	log.Info("Setting up debuggers")
	var (
		result []*Debugger
		errs   *multierror.Error
	)
	for _, command := range commands {
		log.WithField("command", command).Info("Trying to set up debugger")
		kind, version, err := p.InferFromCommand(ctx, command)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		d, err := NewDebugger(kind, version, command, preludeMap[kind])
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		log.WithField("debugger", d.String()).Info("Successfully set up debugger")
		result = append(result, d)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return result, nil
}

// ParsePreludes groups "<kind>:<command>" entries by debugger kind.
// Malformed entries are logged and skipped.
func ParsePreludes(preludes []string) map[debuggers.Kind][]string {
	res := make(map[debuggers.Kind][]string)
	for _, prelude := range preludes {
		name, command, found := strings.Cut(prelude, ":")
		if !found {
			log.WithField("prelude", prelude).Warn("While scanning debugger preludes: No debugger kind specified")
			continue
		}
		kind, err := debuggers.ParseKind(name)
		if err != nil {
			log.WithFields(log.Fields{"prelude": prelude, "err": err}).Warn("While scanning debugger preludes")
			continue
		}
		res[kind] = append(res[kind], strings.TrimSpace(command))
	}
	return res
}

// splitLines splits s at newlines, dropping a final empty line and carriage returns.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
