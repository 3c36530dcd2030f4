package algebra

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("lvalg/algebra", "graph algebra operations")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
