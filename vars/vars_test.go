package vars

import "testing"

func TestDerefOrZero(t *testing.T) {
	if DerefOrZero[int](nil) != 0 {
		t.Fatal()
	}
	s := "foo"
	if DerefOrZero(&s) != "foo" {
		t.Fatal()
	}
}

func TestFirstNonZero(t *testing.T) {
	if n := FirstNonZero(0, 0, 3, 4); n != 3 {
		t.Fatalf("got %d", n)
	}
	if s := FirstNonZero("", ""); s != "" {
		t.Fatalf("got %s", s)
	}
	type Color bool
	if !FirstNonZero(Color(false), Color(true)) {
		t.Fatal()
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true": true, "Y": true, " on ": true, "1": true,
		"false": false, "no": false, "0": false, "": false, "foo": false,
	} {
		if got := StrToBool(str); got != expected {
			t.Fatalf("%q: got %v", str, got)
		}
	}
}
