package sparse

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMatrixSetAndGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	M := NewIntMatrix(10, 10, -1)
	M.Set(2, 3, 4711)
	M.Set(0, 9, 1)
	M.Set(9, 0, 2)
	M.Set(2, 1, 3)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) to be 4711, is %d", v)
	}
	if v := M.Value(9, 9); v != -1 {
		t.Errorf("expected M(9,9) to be the null value, is %d", v)
	}
	if M.ValueCount() != 4 {
		t.Errorf("expected 4 values in M, have %d", M.ValueCount())
	}
	M.Set(2, 3, 42)
	if v := M.Value(2, 3); v != 42 || M.ValueCount() != 4 {
		t.Errorf("expected M(2,3) to be overwritten with 42, is %d", v)
	}
}

func TestMatrixAddPair(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	M := NewIntMatrix(3, 3, DefaultNullValue)
	M.Add(1, 1, 5)
	if a, b := M.Values(1, 1); a != 5 || b != DefaultNullValue {
		t.Errorf("expected single value 5 at (1,1), have (%d,%d)", a, b)
	}
	M.Add(1, 1, 7)
	if a, b := M.Values(1, 1); a != 5 || b != 7 {
		t.Errorf("expected pair (5,7) at (1,1), have (%d,%d)", a, b)
	}
	if M.ValueCount() != 1 {
		t.Errorf("expected one position set, have %d", M.ValueCount())
	}
}

func TestMatrixRowMajorOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	M := NewIntMatrix(4, 4, -1)
	M.Set(3, 0, 1).Set(0, 3, 2).Set(1, 1, 3).Set(0, 0, 4).Set(3, 3, 5)
	var last [2]int
	first := true
	M.Each(func(i, j int, a, b int32) {
		if !first && (i < last[0] || i == last[0] && j <= last[1]) {
			t.Errorf("entries out of order: (%d,%d) after (%d,%d)", i, j, last[0], last[1])
		}
		if b != -1 {
			t.Errorf("unexpected second value at (%d,%d)", i, j)
		}
		first = false
		last = [2]int{i, j}
	})
	for _, probe := range []struct{ i, j, v int }{
		{3, 0, 1}, {0, 3, 2}, {1, 1, 3}, {0, 0, 4}, {3, 3, 5}, {2, 2, -1},
	} {
		if v := M.Value(probe.i, probe.j); int(v) != probe.v {
			t.Errorf("expected M(%d,%d) = %d, is %d", probe.i, probe.j, probe.v, v)
		}
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set outside of matrix to panic")
		}
	}()
	M := NewIntMatrix(2, 2, -1)
	M.Set(2, 0, 1)
}
