package style

import (
	"reflect"
	"testing"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		in   Fragment
		want Map
	}{
		{"empty", None(), Map{}},
		{"nil map", Of(nil), Map{}},
		{"empty list", List(), Map{}},
		{"single", Of(Map{"color": "red"}), Map{"color": "red"}},
		{
			"last wins",
			List(Of(Map{"color": "red"}), None(), Of(Map{"fontSize": 12}), Of(Map{"color": "blue"})),
			Map{"color": "blue", "fontSize": 12},
		},
		{
			"nested lists expand in place",
			List(Of(Map{"a": 1}), List(Of(Map{"a": 2, "b": 2}), List(Of(Map{"b": 3}))), Of(Map{"c": 4})),
			Map{"a": 2, "b": 3, "c": 4},
		},
		{
			"nil values are kept",
			List(Of(Map{"a": 1}), Of(Map{"a": nil})),
			Map{"a": nil},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(tt.in)
			if got == nil {
				t.Fatal("Flatten returned nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Flatten = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlattenAssociative(t *testing.T) {
	a := Of(Map{"x": 1, "y": 1})
	b := Of(Map{"y": 2, "z": 2})
	c := Of(Map{"z": 3})

	left := Flatten(List(List(a, b), c))
	right := Flatten(List(a, List(b, c)))
	flat := Flatten(List(a, b, c))
	if !reflect.DeepEqual(left, right) || !reflect.DeepEqual(left, flat) {
		t.Errorf("grouping changed result: %v / %v / %v", left, right, flat)
	}
}

func TestFlattenIdempotent(t *testing.T) {
	f := List(Of(Map{"a": 1}), List(Of(Map{"b": 2})))
	once := Flatten(f)
	twice := Flatten(Of(once))
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Flatten(Of(Flatten(f))) = %v, want %v", twice, once)
	}
}

func TestFlattenDoesNotAlias(t *testing.T) {
	m := Map{"a": 1}
	out := Flatten(Of(m))
	out["a"] = 2
	if m["a"] != 1 {
		t.Error("Flatten result aliases input map")
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		f    Fragment
		want bool
	}{
		{None(), true},
		{Of(Map{}), true},
		{List(None(), Of(Map{})), true},
		{List(None(), Of(Map{"a": 1})), false},
		{Of(Map{"a": nil}), false},
	}
	for i, tt := range tests {
		if got := tt.f.IsEmpty(); got != tt.want {
			t.Errorf("case %d: IsEmpty() = %v, want %v", i, got, tt.want)
		}
	}
}

func TestTake(t *testing.T) {
	m := Map{"backgroundColor": "red", "width": 40}
	v, ok, rest := m.Take("backgroundColor")
	if !ok || v != "red" {
		t.Errorf("Take = %v, %v", v, ok)
	}
	if _, found := rest["backgroundColor"]; found {
		t.Error("rest still holds the taken key")
	}
	if _, found := m["backgroundColor"]; !found {
		t.Error("Take modified the receiver")
	}
	if _, ok, _ := m.Take("missing"); ok {
		t.Error("Take reported a missing key as present")
	}
}
