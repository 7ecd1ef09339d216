package main

import (
	"github.com/reusee/clipc/compile"
	"github.com/reusee/clipc/debugs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Compile compile.Module
	Debugs  debugs.Module
}
