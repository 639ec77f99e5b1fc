package engine

// BinaryOperator combines the pending buffer with the current value.
type BinaryOperator int

// Binary operators.
const (
	Add BinaryOperator = iota
	Subtract
	Multiply
	Divide
	And
	Or
	Xor
	Nor
	ShiftLeftBy
	ShiftRightBy
)

// UnaryOperator transforms the current value.
type UnaryOperator int

// Unary operators.
const (
	ShiftLeft UnaryOperator = iota
	ShiftRight
)

// ComplementOperator replaces the current value by a complement of its bits.
type ComplementOperator int

// Complement operators.
const (
	OnesComplement ComplementOperator = iota
	TwosComplement
)

// Labels maps button labels to the events they trigger.
var Labels = map[string]Event{
	"+":    Binary{Op: Add},
	"-":    Binary{Op: Subtract},
	"×":    Binary{Op: Multiply},
	"÷":    Binary{Op: Divide},
	"AND":  Binary{Op: And},
	"OR":   Binary{Op: Or},
	"XOR":  Binary{Op: Xor},
	"NOR":  Binary{Op: Nor},
	"X<<Y": Binary{Op: ShiftLeftBy},
	"X>>Y": Binary{Op: ShiftRightBy},
	"<<":   Unary{Op: ShiftLeft},
	">>":   Unary{Op: ShiftRight},
	"1's":  Complement{Op: OnesComplement},
	"2's":  Complement{Op: TwosComplement},
}

// Lookup returns the event for a button label.
func Lookup(label string) (Event, bool) {
	ev, ok := Labels[label]

	return ev, ok
}

var binaryLabels = [...]string{
	Add:          "+",
	Subtract:     "-",
	Multiply:     "×",
	Divide:       "÷",
	And:          "AND",
	Or:           "OR",
	Xor:          "XOR",
	Nor:          "NOR",
	ShiftLeftBy:  "X<<Y",
	ShiftRightBy: "X>>Y",
}

func (op BinaryOperator) String() string {
	if op < 0 || int(op) >= len(binaryLabels) {
		return "?"
	}

	return binaryLabels[op]
}

func (op UnaryOperator) String() string {
	switch op {
	case ShiftLeft:
		return "<<"
	case ShiftRight:
		return ">>"
	}

	return "?"
}

func (op ComplementOperator) String() string {
	switch op {
	case OnesComplement:
		return "1's"
	case TwosComplement:
		return "2's"
	}

	return "?"
}
