package core

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("lvalg/core", "graph and selector wrappers")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
