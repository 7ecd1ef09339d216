package clipconfigs

import (
	"github.com/reusee/clipc/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
