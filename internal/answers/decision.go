package answers

// Decision is the outcome of checking a complete answer set: either the run
// continues with the answers or it is aborted with a reason.
type Decision struct {
	Answers AnswerSet

	// Err is ErrNoDepot or ErrOverrideDeclined for aborted runs
	Err    error
	Reason string
}

// Aborted reports whether the run has to stop
func (d Decision) Aborted() bool {
	return d.Err != nil
}

// Continue builds a decision that carries on with a
func Continue(a AnswerSet) Decision {
	return Decision{Answers: a}
}

// Abort builds a decision that stops the run without touching any file
func Abort(err error, reason string) Decision {
	return Decision{Err: err, Reason: reason}
}

// Decide applies the checks made after all answers were collected. A declined
// overwrite wins over a missing depot.
func Decide(a AnswerSet) Decision {
	if a.Override != nil && !*a.Override {
		return Abort(ErrOverrideDeclined, "Config replacement not allowed. Aborting...")
	}

	if !a.Depots.Any() {
		return Abort(ErrNoDepot, "You did not specify a depot. Aborting...")
	}

	return Continue(a)
}
