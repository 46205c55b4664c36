package geom

import "testing"

func TestRangeSize(t *testing.T) {
	r := NewRange(2, 5)
	if got := r.Size(); got != 3 {
		t.Errorf("Size() = %v, want 3", got)
	}
}

func TestNoneRange(t *testing.T) {
	r := NoneRange()
	if !r.IsNone() {
		t.Error("NoneRange().IsNone() = false, want true")
	}
	if got := r.Size(); got != 0 {
		t.Errorf("Size() = %v, want 0", got)
	}
}

func TestRangeUnion(t *testing.T) {
	a := NewRange(0, 4)
	b := NewRange(2, 6)
	u := a.Union(b)
	if u.Min != 0 || u.Max != 6 {
		t.Errorf("Union() = [%v,%v], want [0,6]", u.Min, u.Max)
	}
}

func TestRangeUnionWithNone(t *testing.T) {
	a := NewRange(1, 2)
	if got := a.Union(NoneRange()); got != a {
		t.Errorf("Union(none) = %v, want %v", got, a)
	}
	if got := NoneRange().Union(a); got != a {
		t.Errorf("none.Union(a) = %v, want %v", got, a)
	}
}

func TestRangeIntersect(t *testing.T) {
	a := NewRange(0, 4)
	b := NewRange(2, 6)
	i := a.Intersect(b)
	if i.Min != 2 || i.Max != 4 {
		t.Errorf("Intersect() = [%v,%v], want [2,4]", i.Min, i.Max)
	}

	disjoint := NewRange(10, 12)
	if !a.Intersect(disjoint).IsNone() {
		t.Error("Intersect(disjoint) should be none")
	}
}

func TestRangeInclude(t *testing.T) {
	r := NewRange(1, 2).Include(5)
	if r.Min != 1 || r.Max != 5 {
		t.Errorf("Include(5) = [%v,%v], want [1,5]", r.Min, r.Max)
	}

	r = NoneRange().Include(3)
	if r.Min != 3 || r.Max != 3 {
		t.Errorf("none.Include(3) = [%v,%v], want [3,3]", r.Min, r.Max)
	}
}

func TestRangeEnlargeReduce(t *testing.T) {
	r := NewRange(2, 4).Enlarge(1)
	if r.Min != 1 || r.Max != 5 {
		t.Errorf("Enlarge(1) = [%v,%v], want [1,5]", r.Min, r.Max)
	}
	r = r.Reduce(1)
	if r.Min != 2 || r.Max != 4 {
		t.Errorf("Reduce(1) = [%v,%v], want [2,4]", r.Min, r.Max)
	}
}

func TestRangeShift(t *testing.T) {
	r := NewRange(0, 6).Sub(3)
	if r.Min != -3 || r.Max != 3 {
		t.Errorf("Sub(3) = [%v,%v], want [-3,3]", r.Min, r.Max)
	}
	r = r.Add(3)
	if r.Min != 0 || r.Max != 6 {
		t.Errorf("Add(3) = [%v,%v], want [0,6]", r.Min, r.Max)
	}
}

func TestRangeCenter(t *testing.T) {
	if got := NewRange(-3, 3).Center(); got != 0 {
		t.Errorf("Center() = %v, want 0", got)
	}
	if got := NewRange(2, 6).Center(); got != 4 {
		t.Errorf("Center() = %v, want 4", got)
	}
}
