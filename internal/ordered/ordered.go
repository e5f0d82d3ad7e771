// Package ordered converts untyped sequences into typed slices of one of the
// ordered kind families (signed, unsigned, float, string) so the generic
// algorithms can run on data whose element type is only known at runtime.
package ordered

import (
	"errors"
	"fmt"
	"reflect"
)

// Errors returned by Collect and ScalarOf. Callers translate them into their
// own package sentinels.
var (
	ErrNotSequence = errors.New("ordered: not a slice or array")
	ErrElementType = errors.New("ordered: element kind is not ordered")
)

// Family groups reflect kinds that compare with each other.
type Family int

const (
	Invalid Family = iota
	Signed
	Unsigned
	Float
	String
)

func (f Family) String() string {
	switch f {
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return "invalid"
	}
}

// FamilyOf maps a reflect.Kind to its Family.
func FamilyOf(k reflect.Kind) Family {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Signed
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Unsigned
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.String:
		return String
	default:
		return Invalid
	}
}

// Seq is a sequence widened to the largest type of its family. Exactly one of
// the slices is populated, according to Family.
//
// Elem is the element type the values are narrowed back to. For boxed
// sequences ([]any and friends) it is the dynamic type shared by every
// element, or the widest type of the family when the elements disagree.
type Seq struct {
	Family  Family
	Elem    reflect.Type
	Boxed   bool
	Ints    []int64
	Uints   []uint64
	Floats  []float64
	Strings []string

	typ reflect.Type
}

// Len returns the number of elements.
func (s *Seq) Len() int {
	switch s.Family {
	case Signed:
		return len(s.Ints)
	case Unsigned:
		return len(s.Uints)
	case Float:
		return len(s.Floats)
	case String:
		return len(s.Strings)
	default:
		return 0
	}
}

// widest is the type every family widens to.
var widest = map[Family]reflect.Type{
	Signed:   reflect.TypeOf(int64(0)),
	Unsigned: reflect.TypeOf(uint64(0)),
	Float:    reflect.TypeOf(float64(0)),
	String:   reflect.TypeOf(""),
}

// Collect widens v, which must be a slice or array of an ordered kind, or a
// slice or array of empty interfaces whose dynamic values all belong to one
// ordered family (the shape json.Unmarshal produces). A nil interface is
// ErrNotSequence. An empty boxed sequence has Family Invalid.
func Collect(v any) (*Seq, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: <nil>", ErrNotSequence)
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %T", ErrNotSequence, v)
	}
	elem := rv.Type().Elem()
	s := &Seq{Family: FamilyOf(elem.Kind()), Elem: elem}
	if rv.Kind() == reflect.Slice {
		s.typ = rv.Type()
	}
	n := rv.Len()
	items := make([]reflect.Value, n)
	for i := range items {
		items[i] = rv.Index(i)
	}

	if elem.Kind() == reflect.Interface && elem.NumMethod() == 0 {
		s.Boxed = true
		s.Family = Invalid
		for i, it := range items {
			if it.IsNil() {
				return nil, fmt.Errorf("%w: nil at index %d", ErrElementType, i)
			}
			it = it.Elem()
			f := FamilyOf(it.Kind())
			if f == Invalid {
				return nil, fmt.Errorf("%w: %s at index %d", ErrElementType, it.Type(), i)
			}
			switch {
			case i == 0:
				s.Family, s.Elem = f, it.Type()
			case f != s.Family:
				return nil, fmt.Errorf("%w: %s at index %d among %s values", ErrElementType, it.Type(), i, s.Family)
			case it.Type() != s.Elem:
				s.Elem = widest[f]
			}
			items[i] = it
		}
		if n == 0 {
			return s, nil
		}
	}

	switch s.Family {
	case Signed:
		s.Ints = make([]int64, n)
		for i, it := range items {
			s.Ints[i] = it.Int()
		}
	case Unsigned:
		s.Uints = make([]uint64, n)
		for i, it := range items {
			s.Uints[i] = it.Uint()
		}
	case Float:
		s.Floats = make([]float64, n)
		for i, it := range items {
			s.Floats[i] = it.Float()
		}
	case String:
		s.Strings = make([]string, n)
		for i, it := range items {
			s.Strings[i] = it.String()
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrElementType, elem)
	}

	return s, nil
}

// Scalar is a single widened value.
type Scalar struct {
	Family Family
	Int    int64
	Uint   uint64
	Float  float64
	String string
}

// ScalarOf widens a single value, reporting Invalid for unordered kinds.
func ScalarOf(v any) Scalar {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Scalar{}
	}
	s := Scalar{Family: FamilyOf(rv.Kind())}
	switch s.Family {
	case Signed:
		s.Int = rv.Int()
	case Unsigned:
		s.Uint = rv.Uint()
	case Float:
		s.Float = rv.Float()
	case String:
		s.String = rv.String()
	}

	return s
}

// Rebuild returns a new slice holding the widened values of s, narrowed back
// to Elem. A slice input keeps its own (possibly named) slice type; an array
// input becomes a slice of its element type. Boxed sequences stay boxed.
func (s *Seq) Rebuild() any {
	typ := s.typ
	if typ == nil {
		typ = reflect.SliceOf(s.Elem)
		if s.Boxed {
			typ = reflect.TypeOf([]any(nil))
		}
	}
	n := s.Len()
	out := reflect.MakeSlice(typ, n, n)
	for i := 0; i < n; i++ {
		dst := out.Index(i)
		if s.Boxed {
			dst = reflect.New(s.Elem).Elem()
		}
		switch s.Family {
		case Signed:
			dst.SetInt(s.Ints[i])
		case Unsigned:
			dst.SetUint(s.Uints[i])
		case Float:
			dst.SetFloat(s.Floats[i])
		case String:
			dst.SetString(s.Strings[i])
		}
		if s.Boxed {
			out.Index(i).Set(dst)
		}
	}

	return out.Interface()
}
