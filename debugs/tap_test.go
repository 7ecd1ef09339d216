package debugs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/clipc/logs"
	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
	).Fork(
		func() logs.Writer {
			return buf
		},
		func() TapInput {
			return strings.NewReader("print(foo + 1)\nprint(kind)\nprint(len(names))\n")
		},
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo":   42,
			"kind":  testEnum(2),
			"names": []string{"a", "b"},
		})
	})
	out := buf.String()
	for _, expected := range []string{
		`msg="tap: test" globals="[foo kind names]"`,
		"msg=43",
		"msg=two",
		"msg=2",
		`msg="tap end: test"`,
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("%s not in %s", expected, out)
		}
	}
	if strings.Contains(out, "level=ERROR") {
		t.Fatalf("got %s", out)
	}
}
