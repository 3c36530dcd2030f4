package adjlist

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("lvalg/adjlist", "adjacency list snapshots")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
