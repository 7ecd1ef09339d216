package logs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Writer is where terminal logs go.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
