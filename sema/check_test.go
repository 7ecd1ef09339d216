package sema

import (
	"reflect"
	"strings"
	"testing"

	"github.com/reusee/clipc/ast"
	"github.com/reusee/clipc/diags"
	"github.com/reusee/clipc/syntax"
)

func mustBuild(t *testing.T, src string) *ast.Program {
	t.Helper()
	tokens, errs := syntax.Tokenize(src)
	if len(errs) > 0 {
		t.Fatal(errs)
	}
	root, err := syntax.Parse(tokens, syntax.DefaultTable())
	if err != nil {
		t.Fatal(err)
	}
	return ast.Build(root)
}

func check(t *testing.T, src string) *Result {
	t.Helper()
	return Check(mustBuild(t, src))
}

func TestCheckValid(t *testing.T) {
	res := check(t, `main {
	int:n:3;
	float:f:1.5;
	string:title:"x";
	video:clip:"in.mp4";
	audio:song:"s.mp3";
	video:empty;
	n = n * 2 - 1;
	f = -f / 2.0;
	clip = @resize[clip, 640, 480];
	clip = @concat[clip, clip];
	if (n > 1) { clip = @mute[]; } else { clip = @speed[2]; }
	while (not n) { n = n - 1; }
	export clip as "out.mp4";
	export song as "out.mp3";
	1 + 2;
}`)
	if len(res.Diagnostics) > 0 {
		t.Fatalf("got %v", res.Diagnostics)
	}
	expected := Scope{
		"n": Int, "f": Float, "title": String,
		"clip": Video, "song": Audio, "empty": Video,
	}
	if !reflect.DeepEqual(res.Symbols, expected) {
		t.Fatalf("got %v", res.Symbols)
	}
}

func TestScopeIsolation(t *testing.T) {
	res := check(t, `main {
	int:x:0;
	while (x < 3) { int:y:5; x = (x + 1); }
	x = y;
}`)
	if len(res.Diagnostics) != 1 {
		t.Fatalf("got %v", res.Diagnostics)
	}
	d := res.Diagnostics[0]
	if d.Kind != diags.UndeclaredVariable || d.Message != "undeclared variable 'y'" {
		t.Fatalf("got %v", d)
	}
	if d.Pos != (diags.Pos{Line: 4, Column: 6}) {
		t.Fatalf("got %v", d.Pos)
	}
	if _, ok := res.Symbols["y"]; ok {
		t.Fatal("y leaked")
	}
}

func TestSiblingBranchesIsolated(t *testing.T) {
	res := check(t, `main {
	if (1) { int:a:1; } else { a = 2; }
	if (1) { int:b:1; b = 2; } else { int:b:"s"; }
}`)
	if len(res.Diagnostics) != 2 {
		t.Fatalf("got %v", res.Diagnostics)
	}
	if res.Diagnostics[0].Kind != diags.UndeclaredVariable {
		t.Fatalf("got %v", res.Diagnostics[0])
	}
	if res.Diagnostics[1].Kind != diags.TypeMismatch {
		t.Fatalf("got %v", res.Diagnostics[1])
	}
	if len(res.Symbols) != 0 {
		t.Fatalf("got %v", res.Symbols)
	}
}

func TestBranchSeesOuterScope(t *testing.T) {
	res := check(t, `main {
	int:x:0;
	if (x) { x = 1; while (x) { x = x + 1; } }
}`)
	if len(res.Diagnostics) > 0 {
		t.Fatalf("got %v", res.Diagnostics)
	}
}

func TestTypeMismatch(t *testing.T) {
	res := check(t, "main {\n  int:a:5;\n  a = \"oops\";\n}")
	if len(res.Diagnostics) != 1 {
		t.Fatalf("got %v", res.Diagnostics)
	}
	d := res.Diagnostics[0]
	if d.Kind != diags.TypeMismatch || d.Phase != diags.PhaseSemantic {
		t.Fatalf("got %v", d)
	}
	if d.Pos != (diags.Pos{Line: 3, Column: 3}) {
		t.Fatalf("got %v", d.Pos)
	}
	if d.Message != "cannot assign 'string' to variable 'a' of type 'int'" {
		t.Fatalf("got %q", d.Message)
	}
}

func TestDiagnosticPositions(t *testing.T) {
	for _, test := range []struct {
		src  string
		kind diags.Kind
		pos  diags.Pos
	}{
		// declaration mismatches point at the declared name
		{`main { int:a:"x"; }`, diags.TypeMismatch, diags.Pos{Line: 1, Column: 12}},
		{"main {\n\tvideo:clip:3;\n}", diags.TypeMismatch, diags.Pos{Line: 2, Column: 8}},
		// operations combined with other operators
		{`main { video:v:"a.mp4"; v = 1 + @speed[2]; }`, diags.InvalidOperandTypes, diags.Pos{Line: 1, Column: 31}},
		// condition errors point at the statement keyword
		{`main { if ("yes") { } }`, diags.InvalidConditionType, diags.Pos{Line: 1, Column: 8}},
		{`main { float:f:1.0; while (f) { } }`, diags.InvalidConditionType, diags.Pos{Line: 1, Column: 21}},
		{"main {\n  if (1) {\n    while (\"s\") { }\n  }\n}", diags.InvalidConditionType, diags.Pos{Line: 3, Column: 5}},
	} {
		res := check(t, test.src)
		if len(res.Diagnostics) != 1 {
			t.Fatalf("%s: got %v", test.src, res.Diagnostics)
		}
		d := res.Diagnostics[0]
		if d.Kind != test.kind || d.Pos != test.pos {
			t.Fatalf("%s: got %v at %v", test.src, d.Kind, d.Pos)
		}
	}
}

func TestDeclarationBindsDespiteMismatch(t *testing.T) {
	res := check(t, `main { int:a:"x"; a = 1; export a as "o.mp4"; }`)
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Kind != diags.TypeMismatch {
		t.Fatalf("got %v", res.Diagnostics)
	}
	if res.Symbols["a"] != Int {
		t.Fatalf("got %v", res.Symbols)
	}
}

func TestCheckDiagnostics(t *testing.T) {
	tests := []struct {
		src      string
		kinds    []diags.Kind
		messages []string
	}{
		{
			src:      `main { x = 1; }`,
			kinds:    []diags.Kind{diags.UndeclaredVariable},
			messages: []string{"undeclared variable 'x'"},
		},
		{
			src:      `main { export v as "o.mp4"; }`,
			kinds:    []diags.Kind{diags.UndeclaredVariable},
			messages: []string{"undeclared variable 'v'"},
		},
		{
			src:      `main { int:a:1 + 2.5; }`,
			kinds:    []diags.Kind{diags.InvalidOperandTypes},
			messages: []string{"invalid operation '+' between 'int' and 'float'"},
		},
		{
			src:      `main { string:s:"a"; s = s + s; }`,
			kinds:    []diags.Kind{diags.InvalidOperandTypes},
			messages: []string{"invalid operation '+' between 'string' and 'string'"},
		},
		{
			src:      `main { if ("yes") { } }`,
			kinds:    []diags.Kind{diags.InvalidConditionType},
			messages: []string{"condition must be of type 'bool' or 'int', not 'string'"},
		},
		{
			src:      `main { float:f:1.0; while (f) { } }`,
			kinds:    []diags.Kind{diags.InvalidConditionType},
			messages: []string{"condition must be of type 'bool' or 'int', not 'float'"},
		},
		{
			src:      `main { if (@mute[]) { } }`,
			kinds:    []diags.Kind{diags.InvalidConditionType},
			messages: []string{"condition must be of type 'bool' or 'int', not 'video'"},
		},
		{
			src:      `main { string:s:-"a"; }`,
			kinds:    []diags.Kind{diags.InvalidOperandTypes},
			messages: []string{"invalid operation '-' on 'string'"},
		},
		{
			src:      `main { float:f:not 1.5; }`,
			kinds:    []diags.Kind{diags.InvalidOperandTypes},
			messages: []string{"invalid operation 'not' on 'float'"},
		},
		{
			src:      `main { video:v:"a.mp4"; v = 1 + @speed[2]; }`,
			kinds:    []diags.Kind{diags.InvalidOperandTypes},
			messages: []string{"invalid operation '+' between 'int' and 'video'"},
		},
		{
			src:      `main { video:v:"a.mp4"; v = -@mute[]; }`,
			kinds:    []diags.Kind{diags.InvalidOperandTypes},
			messages: []string{"invalid operation '-' on 'video'"},
		},
		{
			src:      `main { int:i:@trim[0, 1]; }`,
			kinds:    []diags.Kind{diags.TypeMismatch},
			messages: []string{"cannot assign 'video' to variable 'i' of type 'int'"},
		},
		{
			// unknown operands never cascade
			src:      `main { int:a:b + 1; a = c * 2.5; if (d) { } }`,
			kinds:    []diags.Kind{diags.UndeclaredVariable, diags.UndeclaredVariable, diags.UndeclaredVariable},
			messages: []string{"undeclared variable 'b'", "undeclared variable 'c'", "undeclared variable 'd'"},
		},
		{
			// later statements are still checked
			src:   `main { int:a:"s"; a = 1.5; q = 1; string:s:1; }`,
			kinds: []diags.Kind{diags.TypeMismatch, diags.TypeMismatch, diags.UndeclaredVariable, diags.TypeMismatch},
		},
	}

	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			res := check(t, test.src)
			if len(res.Diagnostics) != len(test.kinds) {
				t.Fatalf("got %v", res.Diagnostics)
			}
			for i, d := range res.Diagnostics {
				if d.Kind != test.kinds[i] {
					t.Fatalf("%d: got %v", i, d)
				}
				if i < len(test.messages) && d.Message != test.messages[i] {
					t.Fatalf("%d: got %q", i, d.Message)
				}
			}
		})
	}
}

func TestCheckDeterministic(t *testing.T) {
	prog := mustBuild(t, `main {
	int:a:"s";
	b = 1;
	while (a) { int:c:1.5; export z as "z.mp4"; }
	if ("x") { a = a + 1.0; }
}`)
	before := ast.Print(prog)
	first := Check(prog)
	second := Check(prog)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("got %v and %v", first.Diagnostics, second.Diagnostics)
	}
	if len(first.Diagnostics) != 6 {
		t.Fatalf("got %v", first.Diagnostics)
	}
	if ast.Print(prog) != before {
		t.Fatal("program modified")
	}
}

func TestCheckPartialProgram(t *testing.T) {
	res := Check(&ast.Program{
		Statements: []ast.Stmt{
			&ast.VarDecl{Type: "int", Name: "x"},
			&ast.Assignment{Name: "x"},
			&ast.IfStmt{},
			&ast.BinaryOp{Op: syntax.TokenPlus},
		},
	})
	if len(res.Diagnostics) > 0 {
		t.Fatalf("got %v", res.Diagnostics)
	}
	if res := Check(nil); len(res.Diagnostics) > 0 || len(res.Symbols) != 0 {
		t.Fatal()
	}
}

func TestTypes(t *testing.T) {
	for _, name := range []string{"int", "float", "string", "video", "audio", "bool"} {
		if TypeOf(name).String() != name {
			t.Fatalf("got %v", TypeOf(name))
		}
	}
	if TypeOf("unknown") != Unknown || TypeOf("clip") != Unknown {
		t.Fatal()
	}
	if !Video.Accepts(String) || !Audio.Accepts(String) || Int.Accepts(String) || !Float.Accepts(Float) {
		t.Fatal()
	}
}

func TestScopeSnapshot(t *testing.T) {
	scope := NewScope()
	scope.Bind("a", Int)
	snap := scope.Snapshot()
	snap.Bind("b", Video)
	snap.Bind("a", Float)
	if _, ok := scope.Lookup("b"); ok {
		t.Fatal()
	}
	if typ, _ := scope.Lookup("a"); typ != Int {
		t.Fatalf("got %v", typ)
	}
	if str := strings.Join(snap.Names(), ","); str != "a,b" {
		t.Fatalf("got %s", str)
	}
	if Scope(nil).Snapshot() == nil {
		t.Fatal()
	}
}
