package anynum

import (
	"cmp"
	"errors"
	"strconv"

	"github.com/shabbyrobe/go-num"
	"golang.org/x/exp/constraints"
)

// Op names an operation that combines two numbers of the same kind.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpCompare
)

// numArith is the number of arithmetic ops, i.e. those producing a number.
const numArith = int(OpDiv) + 1

var opNames = [...]string{
	OpAdd:     "add",
	OpSub:     "subtract",
	OpMul:     "multiply",
	OpDiv:     "divide",
	OpCompare: "compare",
}

func (op Op) String() string {
	if int(op) >= len(opNames) {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}

	return opNames[op]
}

// errDivideByZero is the panic value for 128-bit division by zero. The
// fixed-width kinds panic with the runtime's own error instead.
var errDivideByZero = errors.New("integer divide by zero")

// table holds the native operations of one representation.
type table[T any] struct {
	arith   [numArith]func(a, b T) T
	compare func(a, b T) int
}

// operable is the set of representations with Go's built-in operators.
type operable interface {
	constraints.Integer | constraints.Float
}

func operatorTable[N operable]() table[N] {
	return table[N]{
		arith: [numArith]func(a, b N) N{
			OpAdd: func(a, b N) N { return a + b },
			OpSub: func(a, b N) N { return a - b },
			OpMul: func(a, b N) N { return a * b },
			OpDiv: func(a, b N) N { return a / b },
		},
		compare: cmp.Compare[N],
	}
}

var i128Table = table[num.I128]{
	arith: [numArith]func(a, b num.I128) num.I128{
		OpAdd: num.I128.Add,
		OpSub: num.I128.Sub,
		OpMul: num.I128.Mul,
		OpDiv: func(a, b num.I128) num.I128 {
			if b == (num.I128{}) {
				panic(errDivideByZero)
			}

			return a.Quo(b)
		},
	},
	compare: num.I128.Cmp,
}

var u128Table = table[num.U128]{
	arith: [numArith]func(a, b num.U128) num.U128{
		OpAdd: num.U128.Add,
		OpSub: num.U128.Sub,
		OpMul: num.U128.Mul,
		OpDiv: func(a, b num.U128) num.U128 {
			if b == (num.U128{}) {
				panic(errDivideByZero)
			}

			return a.Quo(b)
		},
	},
	compare: num.U128.Cmp,
}

// tableFor returns the native operations of T. It is the only place that
// enumerates the representations for arithmetic.
func tableFor[T Native]() table[T] {
	var t any

	switch any(*new(T)).(type) {
	case int8:
		t = operatorTable[int8]()
	case int16:
		t = operatorTable[int16]()
	case int32:
		t = operatorTable[int32]()
	case int64:
		t = operatorTable[int64]()
	case num.I128:
		t = i128Table
	case uint8:
		t = operatorTable[uint8]()
	case uint16:
		t = operatorTable[uint16]()
	case uint32:
		t = operatorTable[uint32]()
	case uint64:
		t = operatorTable[uint64]()
	case num.U128:
		t = u128Table
	case float32:
		t = operatorTable[float32]()
	case float64:
		t = operatorTable[float64]()
	}

	return t.(table[T])
}
