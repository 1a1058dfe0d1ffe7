package state

import "time"

// Severity classifies a Notice.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

const (
	alertDuration   = 3 * time.Second
	confirmDuration = 2 * time.Second
)

// Notice is a transient, user-facing notification emitted by a Store action.
type Notice struct {
	Severity Severity
	Title    string
	Detail   string
	Duration time.Duration
}

func newNotice(sev Severity, title, detail string) Notice {
	d := confirmDuration
	if sev == SeverityWarning || sev == SeverityError {
		d = alertDuration
	}
	return Notice{Severity: sev, Title: title, Detail: detail, Duration: d}
}

// Notice texts.
const (
	TitleEmptyQuery = "Please enter a Pokemon name or ID"
	TitleNotFound   = "Pokemon not found"
	DetailNotFound  = "Please try another name or ID"
	TitlePartyFull  = "Party is full!"
	DetailPartyFull = "You can only capture up to 6 Pokemon"
)
