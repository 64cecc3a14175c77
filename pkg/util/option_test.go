package util

import "testing"

func Test_Option_01(t *testing.T) {
	opt := Some(10)
	//
	if !opt.HasValue() || opt.IsEmpty() {
		t.Errorf("a populated option has a value")
	}
	//
	if opt.Unwrap() != 10 {
		t.Errorf("unwrapping yields the wrapped value")
	}
}

func Test_Option_02(t *testing.T) {
	opt := None[string]()
	//
	if opt.HasValue() || !opt.IsEmpty() {
		t.Errorf("an empty option has no value")
	}
	//
	if opt.UnwrapOr("fallback") != "fallback" {
		t.Errorf("unwrapping an empty option yields the fallback")
	}
	//
	if Some("x").UnwrapOr("fallback") != "x" {
		t.Errorf("the fallback is ignored when a value is present")
	}
}

func Test_Option_03(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("unwrapping an empty option panics")
		}
	}()
	//
	None[int]().Unwrap()
}
