package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestWith(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := With(context.Background(), "unit", "a.clip")
		ctx2 := With(ctx, "phase", "lex")
		logger.InfoContext(ctx2, "foo", "n", 1)
		logger.InfoContext(ctx, "bar")
	})
	lines := strings.Split(buf.String(), "\n")
	if !strings.Contains(lines[0], "msg=foo n=1 unit=a.clip phase=lex") {
		t.Fatalf("got %s", lines[0])
	}
	if !strings.Contains(lines[1], "msg=bar unit=a.clip") || strings.Contains(lines[1], "phase") {
		t.Fatalf("got %s", lines[1])
	}
}

func TestWrapSpan(t *testing.T) {
	if WrapSpan(context.Background(), nil) != nil {
		t.Fatal()
	}
	err := errors.New("foo")
	if WrapSpan(context.Background(), err) != err {
		t.Fatal()
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	wrapped := WrapSpan(ctx, err)
	if !errors.Is(wrapped, err) {
		t.Fatal()
	}
	if !strings.Contains(wrapped.Error(), "span: abc") {
		t.Fatalf("got %v", wrapped)
	}
	if WrapSpan(ctx, nil) != nil {
		t.Fatal()
	}
}
