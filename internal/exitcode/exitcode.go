package exitcode

// Package exitcode decides whether the process should terminate with a
// non-zero status. Some hosting environments surface any explicit exit
// as noise, so interactive runs end silently unless forced.

// CodeInterrupted is the conventional status for a SIGINT-terminated
// run.
const CodeInterrupted = 130

// Decision is the outcome of the exit policy.
type Decision struct {
	Terminate bool
	Code      int
}

// Decide maps a run result to an exit decision.
//
// A result of 0 never terminates. When force is set (FORCE_SYS_EXIT=1),
// any non-zero result terminates. Otherwise non-zero results terminate
// only on a non-interactive terminal.
func Decide(rc int, interactive bool, force bool) Decision {
	if rc == 0 {
		return Decision{Terminate: false, Code: 0}
	}
	if force {
		return Decision{Terminate: true, Code: rc}
	}
	if interactive {
		return Decision{Terminate: false, Code: rc}
	}
	return Decision{Terminate: true, Code: rc}
}

// DecideInterrupted maps an interrupted run to an exit decision. An
// interrupt ends silently regardless of terminal; only the override
// forces the conventional non-zero status.
func DecideInterrupted(force bool) Decision {
	if force {
		return Decision{Terminate: true, Code: CodeInterrupted}
	}
	return Decision{Terminate: false, Code: CodeInterrupted}
}
