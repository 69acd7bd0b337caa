package till

import (
	"fmt"

	"go.uber.org/zap"
)

// An Option configures a Till in New. Options are applied in order and
// print themselves in the "till opened" log entry.
type Option interface {
	fmt.Stringer

	apply(*Till)
}

type loggerOption struct {
	log *zap.Logger
}

func (o loggerOption) apply(t *Till) {
	if o.log == nil {
		return
	}

	t.log = o.log
}

func (o loggerOption) String() string {
	return fmt.Sprintf("till.Logger: %t", o.log != nil)
}

// WithLogger sets the logger the Till reports its operations to.
func WithLogger(log *zap.Logger) Option {
	return loggerOption{log: log}
}

type nameOption string

func (o nameOption) apply(t *Till) {
	t.name = string(o)
}

func (o nameOption) String() string {
	return fmt.Sprintf("till.Name: %s", string(o))
}

// WithName tags every log entry of the Till with the given name.
func WithName(name string) Option {
	return nameOption(name)
}
