package maybe_test

import (
	"testing"

	. "github.com/npillmayer/pcoll/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeValue(t *testing.T) {
	v, ok := Just(7).Value()
	if !ok || v != 7 {
		t.Logf("v = %d, ok = %v", v, ok)
		t.Error("expected Just(7).Value() to be (7, true), isn't")
	}
	w, ok := Nothing[int]().Value()
	if ok || w != 0 {
		t.Logf("w = %d, ok = %v", w, ok)
		t.Error("expected Nothing.Value() to be (0, false), isn't")
	}
}

func TestMaybeUncomparablePayload(t *testing.T) {
	// Payload types containing maps or slices cannot go through the
	// Matcher switch (case comparison would panic at runtime); the
	// comma-ok accessor has to carry them.
	x := Just(map[string]int{"seven": 7})
	v, ok := x.Value()
	if !ok || v["seven"] != 7 {
		t.Logf("v = %v, ok = %v", v, ok)
		t.Error("expected Just(map).Value() to return the map, didn't")
	}
	y := Nothing[[]int]()
	if w, ok := y.Value(); ok || w != nil {
		t.Error("expected Nothing[[]int]().Value() to be (nil, false), isn't")
	}
	yy := y.WithDefault([]int{1, 2})
	if len(yy) != 2 {
		t.Errorf("expected Nothing to default to [1 2], is %v", yy)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	xx := x.WithDefault(100)
	if xx != 7 {
		t.Logf("y = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}

	y := Nothing[int]()
	yy := y.WithDefault(100)
	if yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	if v, _ := xx.Value(); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}

	y := Nothing[int]()
	yy := y.Map(func(n int) int {
		return n * 2
	})
	if _, ok := yy.Value(); ok {
		t.Error("expected Nothing.Map(…) to stay Nothing, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	gt := AndThen(gt0, Just(7))
	var isGreater bool
	switch m := gt.Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
}
