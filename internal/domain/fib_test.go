package domain

import "testing"

func TestFib_KnownSequence(t *testing.T) {
	want := []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for n, expected := range want {
		if got := Fib(n); got != expected {
			t.Errorf("Fib(%d) = %d, want %d", n, got, expected)
		}
	}
}

func TestFib_Recurrence(t *testing.T) {
	for n := 2; n <= 10; n++ {
		if got := Fib(n); got != Fib(n-1)+Fib(n-2) {
			t.Errorf("Fib(%d) = %d, want Fib(%d)+Fib(%d)", n, got, n-1, n-2)
		}
	}
}

func TestFib_CanonicalComparisonPoint(t *testing.T) {
	if got := Fib(25); got != 75025 {
		t.Errorf("Fib(25) = %d, want 75025", got)
	}
}

func TestFib_NegativeReturnsInput(t *testing.T) {
	for _, n := range []int{-1, -7} {
		if got := Fib(n); got != n {
			t.Errorf("Fib(%d) = %d, want %d (base case passthrough)", n, got, n)
		}
	}
}
