package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/reusee/clipc/vars"
)

// Executor dispatches a flat argument list to commands. A command consumes
// one argument per function parameter; sub commands stay in scope after
// their parent ran.
type Executor struct {
	commands map[string]*Command
	// usage output of -h
	Output io.Writer
	// called after -h printed the usage
	Exit func(code int)
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
		Output:   os.Stderr,
		Exit:     os.Exit,
	}
	ret.Define("-h", Func(func() {
		ret.WriteUsage(ret.Output)
		ret.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))
	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

var errorType = reflect.TypeFor[error]()

func (p *Executor) Execute(args []string) error {
	scope := p.commands
	for len(args) > 0 {
		name, command, rest, err := resolve(scope, args)
		if err != nil {
			return err
		}
		args, err = invoke(name, command, rest)
		if err != nil {
			return err
		}
		if command != nil && len(command.Subs) > 0 {
			scope, err = enter(scope, name, command.Subs)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

// resolve looks up the command named by args[0]. -name=value is read as
// -name value when -name is defined.
func resolve(scope map[string]*Command, args []string) (string, *Command, []string, error) {
	name := strings.TrimSpace(args[0])
	rest := args[1:]
	if key, value, ok := strings.Cut(name, "="); ok && strings.HasPrefix(key, "-") {
		if _, defined := scope[key]; defined {
			name = key
			rest = append([]string{value}, rest...)
		}
	}
	command, ok := scope[name]
	if !ok {
		return "", nil, nil, fmt.Errorf("unknown command: %s", name)
	}
	return name, command, rest, nil
}

// invoke calls the function of command with leading args and returns the
// remaining ones.
func invoke(name string, command *Command, args []string) ([]string, error) {
	if command == nil || !command.Func.IsValid() {
		return args, nil
	}
	fnType := command.Func.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := parseArg(fnType.In(i), args)
		if err != nil {
			param := fmt.Sprintf("argument %d", i+1)
			if i < len(command.Params) {
				param = command.Params[i]
			}
			return nil, fmt.Errorf("%s %s: %w", name, param, err)
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	rets := command.Func.Call(callArgs)
	if len(rets) > 0 {
		if err, _ := rets[0].Interface().(error); err != nil {
			return nil, err
		}
	}
	return args, nil
}

// enter adds sub commands to a copy of scope.
func enter(scope map[string]*Command, name string, subs map[string]*Command) (map[string]*Command, error) {
	scope = maps.Clone(scope)
	for subname, sub := range subs {
		if _, ok := scope[subname]; ok {
			return nil, fmt.Errorf("duplicated sub command: %s %s", name, subname)
		}
		scope[subname] = sub
	}
	return scope, nil
}

// parseArg converts args[0] to t. Pointer parameters are optional and
// get a pointer to the zero value when args is empty.
func parseArg(t reflect.Type, args []string) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		ptr := reflect.New(t.Elem())
		if len(args) == 0 {
			return ptr, nil
		}
		elem, err := parseArg(t.Elem(), args)
		if err != nil {
			return reflect.Value{}, err
		}
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	if len(args) == 0 {
		return reflect.Value{}, fmt.Errorf("expecting argument, got nothing")
	}
	str := args[0]
	ret := reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)

	case reflect.String:
		ret.SetString(str)

	default:
		return ret, fmt.Errorf("unsupported type: %v", t)
	}

	return ret, nil
}

func (p *Executor) PrintUsage() {
	p.WriteUsage(p.Output)
}

// WriteUsage lists commands sorted by name, one line per command with its
// aliases and params. Sub commands are indented under their parent.
func (p *Executor) WriteUsage(w io.Writer) {
	writeUsage(w, p.commands, 0)
}

func writeUsage(w io.Writer, commands map[string]*Command, depth int) {
	names := slices.Sorted(maps.Keys(commands))
	printed := make(map[*Command]bool)
	for _, name := range names {
		command := commands[name]
		if command == nil || printed[command] {
			continue
		}
		printed[command] = true
		fmt.Fprintln(w, usageLine(command, primaryName(command, names, commands), names, commands, depth))
		if len(command.Subs) > 0 {
			writeUsage(w, command.Subs, depth+1)
		}
	}
}

// primaryName is the first sorted name of command that is not an alias.
func primaryName(command *Command, names []string, commands map[string]*Command) string {
	first := ""
	for _, name := range names {
		if commands[name] != command {
			continue
		}
		if first == "" {
			first = name
		}
		if !slices.Contains(command.Aliases, name) {
			return name
		}
	}
	return first
}

func usageLine(command *Command, primary string, names []string, commands map[string]*Command, depth int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(primary)
	var aliases []string
	for _, name := range names {
		if name != primary && commands[name] == command {
			aliases = append(aliases, name)
		}
	}
	if len(aliases) > 0 {
		sb.WriteString(" (" + strings.Join(aliases, ", ") + ")")
	}
	for _, param := range command.Params {
		sb.WriteString(" " + param)
	}
	if command.Description != "" {
		sb.WriteString("\t" + command.Description)
	}
	return sb.String()
}
