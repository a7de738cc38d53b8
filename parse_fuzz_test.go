package formula

import (
	"errors"
	"testing"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("y")
	f.Add("-x^2")
	f.Add("atan2(y, x")
	f.Add("1e999")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := Parse(s)
		if err != nil {
			var ie InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q: error %T is not an InputError", s, err)
			}
			if ie.Pos() < 0 || ie.Pos() > len(s) {
				t.Errorf("%q: error position %d out of range", s, ie.Pos())
			}
			return
		}
		vars := a.Vars()
		for i := 1; i < len(vars); i++ {
			if vars[i-1] >= vars[i] {
				t.Errorf("%q: variables %q not sorted and distinct", s, vars)
			}
		}
		if d, e := diff(a.root, copytree(a.root)); d != nil || e != nil {
			t.Errorf("%q: copy differs at %v vs %v", s, d, e)
		}
		a.Eval(nil)
	})
}
