package engine

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("lvalg/engine", "native handle engine")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
