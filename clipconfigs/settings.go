package clipconfigs

import (
	"github.com/reusee/clipc/cmds"
	"github.com/reusee/clipc/configs"
	"github.com/reusee/clipc/vars"
)

var (
	recoverFlag        = cmds.Switch("-recover", "report every syntax error instead of the first")
	colorFlag          = cmds.Switch("-color", "colored diagnostics")
	maxDiagnosticsFlag = cmds.Var[int]("-max-diagnostics", "report at most VALUE diagnostics per file")
)

func init() {
	cmds.Define("-no-emit-check", cmds.Func(func() {
		noEmitCheck = true
	}).Desc("do not parse generated scripts"))
}

var noEmitCheck bool

// Recover enables panic-mode recovery in the parser.
type Recover bool

var _ configs.Configurable = Recover(false)

func (Recover) ConfigPath() string {
	return "recover"
}

func (Module) Recover(
	loader configs.Loader,
) Recover {
	return vars.FirstNonZero(
		Recover(*recoverFlag),
		configs.Resolve[Recover](loader),
	)
}

// MaxDiagnostics limits the diagnostics reported per unit. Zero means no limit.
type MaxDiagnostics int

var _ configs.Configurable = MaxDiagnostics(0)

func (MaxDiagnostics) ConfigPath() string {
	return "max_diagnostics"
}

func (Module) MaxDiagnostics(
	loader configs.Loader,
) MaxDiagnostics {
	// flag
	if *maxDiagnosticsFlag > 0 {
		return MaxDiagnostics(*maxDiagnosticsFlag)
	}

	// the smallest positive limit of all files
	var max int
	for n := range configs.All[int](loader, MaxDiagnostics(0).ConfigPath()) {
		if n > 0 && (max == 0 || n < max) {
			max = n
		}
	}
	return MaxDiagnostics(max)
}

type Color bool

var _ configs.Configurable = Color(false)

func (Color) ConfigPath() string {
	return "color"
}

func (Module) Color(
	loader configs.Loader,
) Color {
	return vars.FirstNonZero(
		Color(*colorFlag),
		configs.Resolve[Color](loader),
	)
}

// EmitCheck parses generated scripts before they are returned. On by default.
type EmitCheck bool

var _ configs.Configurable = EmitCheck(false)

func (EmitCheck) ConfigPath() string {
	return "emit_check"
}

func (Module) EmitCheck(
	loader configs.Loader,
) EmitCheck {
	if noEmitCheck {
		return false
	}
	if set := configs.First[*bool](loader, EmitCheck(false).ConfigPath()); set != nil {
		return EmitCheck(*set)
	}
	return true
}
