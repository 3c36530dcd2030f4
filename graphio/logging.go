package graphio

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("lvalg/graphio", "graph file input and output")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
