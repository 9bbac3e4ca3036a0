package serlog

// Severity is the type-level counterpart of Level. Logf and Modf take the
// severity as a type parameter instead of a value so that the severity of a
// call site is always a compile-time constant. The interface is sealed; the
// five types below are the only severities.
type Severity interface {
	level() Level
}

type (
	Fatal   struct{}
	Error   struct{}
	Warning struct{}
	Info    struct{}
	Debug   struct{}
)

func (Fatal) level() Level   { return FATAL }
func (Error) level() Level   { return ERROR }
func (Warning) level() Level { return WARNING }
func (Info) level() Level    { return INFO }
func (Debug) level() Level   { return DEBUG }
