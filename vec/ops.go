package vec

// Local constraint sets for the operator layer. Kept deliberately small:
// only the element kinds the operators below need.

// Number covers the built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Integer covers the built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed covers the types for which negation is meaningful.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Every operator is the corresponding primitive op routed through the
// elementwise engine in vec.go; none carries independent logic.

// Add returns the elementwise sum of a and b.
func Add[T Number](a, b Vec[T]) Vec[T] {
	return ApplyBinary(a, b, func(x, y T) T { return x + y })
}

// Sub returns the elementwise difference of a and b.
func Sub[T Number](a, b Vec[T]) Vec[T] {
	return ApplyBinary(a, b, func(x, y T) T { return x - y })
}

// Mul returns the elementwise product of a and b.
func Mul[T Number](a, b Vec[T]) Vec[T] {
	return ApplyBinary(a, b, func(x, y T) T { return x * y })
}

// Div returns the elementwise quotient of a and b.
func Div[T Number](a, b Vec[T]) Vec[T] {
	return ApplyBinary(a, b, func(x, y T) T { return x / y })
}

// Rem returns the elementwise remainder of a and b.
func Rem[T Integer](a, b Vec[T]) Vec[T] {
	return ApplyBinary(a, b, func(x, y T) T { return x % y })
}

// Shl shifts every element of a left by the corresponding element of b.
func Shl[T Integer](a, b Vec[T]) Vec[T] {
	return ApplyBinary(a, b, func(x, y T) T { return x << y })
}

// Shr shifts every element of a right by the corresponding element of b.
func Shr[T Integer](a, b Vec[T]) Vec[T] {
	return ApplyBinary(a, b, func(x, y T) T { return x >> y })
}

// BitAnd returns the elementwise bitwise AND of a and b.
func BitAnd[T Integer](a, b Vec[T]) Vec[T] {
	return ApplyBinary(a, b, func(x, y T) T { return x & y })
}

// BitOr returns the elementwise bitwise OR of a and b.
func BitOr[T Integer](a, b Vec[T]) Vec[T] {
	return ApplyBinary(a, b, func(x, y T) T { return x | y })
}

// BitXor returns the elementwise bitwise XOR of a and b.
func BitXor[T Integer](a, b Vec[T]) Vec[T] {
	return ApplyBinary(a, b, func(x, y T) T { return x ^ y })
}

// Not returns the elementwise bitwise complement of a.
func Not[T Integer](a Vec[T]) Vec[T] {
	return ApplyUnary(a, func(x T) T { return ^x })
}

// NotBool returns the elementwise logical negation of a.
func NotBool(a Vec[bool]) Vec[bool] {
	return ApplyUnary(a, func(x bool) bool { return !x })
}

// Neg returns the elementwise negation of a.
func Neg[T Signed](a Vec[T]) Vec[T] {
	return ApplyUnary(a, func(x T) T { return -x })
}

// Eq reports whether a and b have the same length and all corresponding
// elements are equal. Mismatched lengths compare unequal rather than
// panicking.
func Eq[T comparable](a, b Vec[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	return ApplyBinaryBool(a, b, func(x, y T) bool { return x == y })
}
