package ast

// UnaryOp enumerates unary operator kinds.
type UnaryOp uint8

const (
	// UnaryNot represents the logical negation operator (not).
	UnaryNot UnaryOp = iota
	// UnaryNeg represents the arithmetic negation operator (-).
	UnaryNeg
	// UnaryLen represents the length operator (#).
	UnaryLen
	// UnaryBitNot represents the bitwise negation operator (~).
	UnaryBitNot
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNot:
		return "not"
	case UnaryNeg:
		return "-"
	case UnaryLen:
		return "#"
	case UnaryBitNot:
		return "~"
	}
	return "UnaryOp(?)"
}

// BinaryOp enumerates binary operator kinds.
type BinaryOp uint8

const (
	// Арифметические

	// BinaryAdd represents the addition operator (+).
	BinaryAdd BinaryOp = iota
	// BinarySub represents the subtraction operator (-).
	BinarySub
	// BinaryMul represents the multiplication operator (*).
	BinaryMul
	// BinaryDiv represents the division operator (/).
	BinaryDiv
	// BinaryIDiv represents the floor division operator (//).
	BinaryIDiv
	// BinaryMod represents the modulo operator (%).
	BinaryMod
	// BinaryPow represents the power operator (^). Right-associative.
	BinaryPow

	// Строки

	// BinaryConcat represents the concatenation operator (..). Right-associative.
	BinaryConcat

	// Битовые

	// BinaryBitAnd represents the bitwise AND operator (&).
	BinaryBitAnd
	// BinaryBitOr represents the bitwise OR operator (|).
	BinaryBitOr
	// BinaryBitXor represents the bitwise XOR operator (~).
	BinaryBitXor
	// BinaryShl represents the left shift operator (<<).
	BinaryShl
	// BinaryShr represents the right shift operator (>>).
	BinaryShr

	// Сравнения

	// BinaryEq represents the equality operator (==).
	BinaryEq
	// BinaryNotEq represents the inequality operator (~=).
	BinaryNotEq
	// BinaryLess represents the less-than operator (<).
	BinaryLess
	// BinaryLessEq represents the less-or-equal operator (<=).
	BinaryLessEq
	// BinaryGreater represents the greater-than operator (>).
	BinaryGreater
	// BinaryGreaterEq represents the greater-or-equal operator (>=).
	BinaryGreaterEq

	// Логические

	// BinaryAnd represents the logical AND operator (and).
	BinaryAnd
	// BinaryOr represents the logical OR operator (or).
	BinaryOr
)

var binaryOpNames = map[BinaryOp]string{
	BinaryAdd:       "+",
	BinarySub:       "-",
	BinaryMul:       "*",
	BinaryDiv:       "/",
	BinaryIDiv:      "//",
	BinaryMod:       "%",
	BinaryPow:       "^",
	BinaryConcat:    "..",
	BinaryBitAnd:    "&",
	BinaryBitOr:     "|",
	BinaryBitXor:    "~",
	BinaryShl:       "<<",
	BinaryShr:       ">>",
	BinaryEq:        "==",
	BinaryNotEq:     "~=",
	BinaryLess:      "<",
	BinaryLessEq:    "<=",
	BinaryGreater:   ">",
	BinaryGreaterEq: ">=",
	BinaryAnd:       "and",
	BinaryOr:        "or",
}

func (op BinaryOp) String() string {
	if name, ok := binaryOpNames[op]; ok {
		return name
	}
	return "BinaryOp(?)"
}
