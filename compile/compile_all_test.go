package compile

import (
	"fmt"
	"testing"
)

func TestCompileAll(t *testing.T) {
	testScope(t).Call(func(
		compileAll CompileAll,
	) {
		var sources []Source
		for i := range 16 {
			text := validSource
			if i%3 == 0 {
				text = "main { x = 1; }"
			}
			sources = append(sources, Source{
				Name: fmt.Sprintf("%d.clip", i),
				Text: text,
			})
		}
		units, err := compileAll(t.Context(), sources, true)
		if err != nil {
			t.Fatal(err)
		}
		if len(units) != len(sources) {
			t.Fatalf("got %d", len(units))
		}
		for i, unit := range units {
			if unit.Name != sources[i].Name {
				t.Fatalf("got %s", unit.Name)
			}
			if unit.OK() == (i%3 == 0) {
				t.Fatalf("%d: got %v", i, unit.Diagnostics)
			}
		}
	})
}

func TestCompileAllError(t *testing.T) {
	testScope(t).Call(func(
		compileAll CompileAll,
	) {
		_, err := compileAll(t.Context(), []Source{
			{Name: "ok.clip", Text: validSource},
			{Name: "bad.clip", Text: `main { video:v:@speed[2]; }`},
		}, true)
		if err == nil {
			t.Fatal("should fail")
		}
	})
}
