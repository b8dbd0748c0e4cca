package dutytable

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var tableLogger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	tableLogger.Store(&nop)
}

// SetLogger sets the logger used while loading tables. It is safe to call
// concurrently with loading; it must run before the first Default call to
// cover the embedded table.
func SetLogger(l zerolog.Logger) {
	tableLogger.Store(&l)
}

func logger() *zerolog.Logger {
	return tableLogger.Load()
}
