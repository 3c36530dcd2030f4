package builder

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("lvalg/builder", "graph generators")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
