package debuggers

type ExitStatus int

const (
	ExitSuccess ExitStatus = iota
	ExitFailure
)

func (s ExitStatus) Success() bool {
	return s == ExitSuccess
}

func (s ExitStatus) String() string {
	if s.Success() {
		return "success"
	}
	return "failure"
}

// Output is what a single debugger invocation produced. It is not modified after creation.
type Output struct {
	Stdout     string     `json:"stdout" yaml:"stdout"`
	Stderr     string     `json:"stderr" yaml:"stderr"`
	ExitStatus ExitStatus `json:"exit_status" yaml:"exit_status"`
}

func (s ExitStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
