package domain

// Fib returns the n-th Fibonacci number via the naive doubly recursive
// definition: F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2).
//
// The exponential call tree is the point: the benchmark measures raw
// function-call overhead across runtimes, so substituting a memoized or
// iterative variant would make the numbers incomparable. Do not "fix" it.
//
// For n < 2 the input is returned unchanged, so negative n returns n
// without recursing.
func Fib(n int) int {
	if n < 2 {
		return n
	}
	return Fib(n-1) + Fib(n-2)
}
