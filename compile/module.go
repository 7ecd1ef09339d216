package compile

import (
	"github.com/reusee/clipc/clipconfigs"
	"github.com/reusee/clipc/logs"
	"github.com/reusee/clipc/syntax"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs clipconfigs.Module
	Logs    logs.Module
}

func (Module) Table() *syntax.Table {
	return syntax.DefaultTable()
}
