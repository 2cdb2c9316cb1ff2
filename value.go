package main

import "fmt"

// Kind tags the runtime type carried by a Value.
type Kind uint8

const (
	// KindInteger carries a signed 64-bit integer.
	KindInteger Kind = iota
	// KindSymbol carries an uppercase letter naming a subroutine.
	KindSymbol
	// KindAddress carries a code offset.
	KindAddress
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindSymbol:
		return "symbol"
	case KindAddress:
		return "address"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a tagged union of the three runtime value kinds: INTEGER,
// SYMBOL, and ADDRESS. Only int is stored; the field means an int64
// integer or an address for KindInteger/KindAddress, and an uppercase
// letter (stored in its low byte) for KindSymbol.
type Value struct {
	Kind Kind
	int  int64
}

// IntValue constructs an INTEGER value.
func IntValue(v int64) Value { return Value{Kind: KindInteger, int: v} }

// SymbolValue constructs a SYMBOL value. letter must be 'A'-'Z'.
func SymbolValue(letter byte) Value { return Value{Kind: KindSymbol, int: int64(letter)} }

// AddressValue constructs an ADDRESS value.
func AddressValue(addr int64) Value { return Value{Kind: KindAddress, int: addr} }

// Int returns the value's payload as an int64, regardless of kind.
// Callers that care about the kind should check it first.
func (v Value) Int() int64 { return v.int }

// Symbol returns the value's payload as a byte letter. Only meaningful
// when Kind == KindSymbol.
func (v Value) Symbol() byte { return byte(v.int) }

// Address returns the value's payload as a code offset. Only
// meaningful when Kind == KindAddress.
func (v Value) Address() int64 { return v.int }

func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		return fmt.Sprintf("%d", v.int)
	case KindSymbol:
		return string([]byte{byte(v.int)})
	case KindAddress:
		return fmt.Sprintf("@%d", v.int)
	default:
		return fmt.Sprintf("Value{%v, %d}", v.Kind, v.int)
	}
}

// isLetter reports whether b is a valid subroutine-table key / SYMBOL
// payload, 'A'-'Z'.
func isLetter(b byte) bool { return 'A' <= b && b <= 'Z' }

// isDigit reports whether b is a source literal digit, '0'-'9'.
func isDigit(b byte) bool { return '0' <= b && b <= '9' }
