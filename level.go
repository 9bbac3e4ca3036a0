package serlog

import (
	"fmt"
	"strings"
)

// Level is the severity of a log statement. Higher values are more verbose
// and less critical; NONE is only ever a threshold, never a call severity.
type Level int

const (
	NONE Level = iota
	FATAL
	ERROR
	WARNING
	INFO
	DEBUG
)

var l2str = [...]string{
	NONE:    "NONE",
	FATAL:   "FATAL",
	ERROR:   "ERROR",
	WARNING: "WARNING",
	INFO:    "INFO",
	DEBUG:   "DEBUG",
}

func (l Level) String() string {
	if l < NONE || l > DEBUG {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return l2str[l]
}

// ParseLevel converts a level name to a Level, ignoring case.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for l, str := range l2str {
		if name == str {
			return Level(l), nil
		}
	}
	return NONE, fmt.Errorf("unknown log level %q", s)
}
