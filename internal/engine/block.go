package engine

// Block is the element type of a validated stream.
//
// Validation needs equality, addition closed over the type, and (for the
// two-pointer strategy) a total order, so the constraint is the set of
// integer kinds. Validation uses unchecked addition: sums that wrap the
// underlying type are compared as wrapped values.
type Block interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
