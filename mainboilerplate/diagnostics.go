// Package mainboilerplate contains shared boilerplate for this project's
// commands. The idea is to provide a selection of narrowly scoped methods
// so callers do not have to buy-in to an all-or-nothing approach.
package mainboilerplate

import (
	log "github.com/sirupsen/logrus"
)

// Version and BuildDate are stamped at build time via -ldflags.
var (
	Version   = "development"
	BuildDate = "unknown"
)

// Must panics if |err| is non-nil, supplying |msg| and |extra| as
// formatter and fields of the generated panic.
func Must(err error, msg string, extra ...interface{}) {
	if err == nil {
		return
	}
	var f = log.Fields{"err": err}
	for i := 0; i+1 < len(extra); i += 2 {
		f[extra[i].(string)] = extra[i+1]
	}
	log.WithFields(f).Panic(msg)
}
