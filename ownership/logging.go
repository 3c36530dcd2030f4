package ownership

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("lvalg/ownership", "handle ownership transfer")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
