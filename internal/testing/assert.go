package testing

import (
	"errors"
	"reflect"
	"testing"
)

// AssertSuccess that error did not occur.
func AssertSuccess(t testing.TB, err error) {
	t.Helper()

	if err != nil || !isNil(err) {
		t.Fatalf("expected success, got '%v'", err)
	}
}

// AssertErrorIs asserts that err matches target in its chain.
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()

	if !errors.Is(err, target) {
		t.Fatalf("expected '%v' to match '%v'", err, target)
	}
}

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertPanics asserts that f panics.
func AssertPanics(t testing.TB, f func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()

	f()
}

func isNil(a interface{}) bool {
	if a == nil {
		return true
	}

	switch reflect.TypeOf(a).Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return reflect.ValueOf(a).IsNil()
	}

	return false
}
