package proxy

import (
	"fmt"
	"reflect"

	"github.com/mimiclib/mimic/pkg/invocation"
	"github.com/mimiclib/mimic/pkg/mimicerr"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// FuncFieldMaker mocks struct types whose exported fields are func-typed,
// the pure-Go equivalent of a dynamic proxy: the stand-in is allocated with
// reflect.New, so no constructor runs, and each func field is filled with a
// reflect.MakeFunc trampoline into onCall. Declaring an interface's method
// set as a struct of func fields is all a caller needs to mock it.
//
// Rejected targets: non-struct types, structs without func fields, and
// structs with unexported func fields (reflection cannot populate those).
// Non-func fields are left at their zero values.
type FuncFieldMaker struct{}

// CreateMock implements Maker
func (FuncFieldMaker) CreateMock(target reflect.Type, onCall OnCall) (any, error) {
	if target == nil || target.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v is not a struct of func fields", mimicerr.ErrCannotMock, target)
	}

	ptr := reflect.New(target)
	elem := ptr.Elem()

	funcFields := 0
	for i := 0; i < target.NumField(); i++ {
		field := target.Field(i)
		if field.Type.Kind() != reflect.Func {
			continue
		}
		if field.PkgPath != "" {
			return nil, fmt.Errorf("%w: func field %s.%s is unexported", mimicerr.ErrCannotMock, target, field.Name)
		}
		funcFields++

		method := invocation.Method{
			Owner: target,
			Name:  field.Name,
			Type:  field.Type,
		}
		elem.Field(i).Set(trampoline(ptr.Interface(), method, onCall))
	}
	if funcFields == 0 {
		return nil, fmt.Errorf("%w: %s has no func fields to intercept", mimicerr.ErrCannotMock, target)
	}

	return ptr.Interface(), nil
}

func trampoline(mock any, method invocation.Method, onCall OnCall) reflect.Value {
	return reflect.MakeFunc(method.Type, func(in []reflect.Value) []reflect.Value {
		args := make([]any, len(in))
		for i, v := range in {
			args[i] = v.Interface()
		}
		results, raised := onCall(mock, method, args)
		return assemble(method, results, raised)
	})
}

// assemble coerces the handler's results onto the method's result types.
// Stubbed values that fit none of the result slots are usage errors in test
// code; they panic with ErrInvalidStub so the test fails loudly instead of
// silently returning garbage.
func assemble(method invocation.Method, results []any, raised error) []reflect.Value {
	ft := method.Type
	n := ft.NumOut()

	out := make([]reflect.Value, n)
	for i := range out {
		out[i] = reflect.Zero(ft.Out(i))
	}

	if len(results) > n {
		panic(fmt.Errorf("%w: %d value(s) stubbed for %s, which returns %d", mimicerr.ErrInvalidStub, len(results), method, n))
	}
	for i, r := range results {
		if r == nil {
			continue
		}
		rv := reflect.ValueOf(r)
		switch {
		case rv.Type().AssignableTo(ft.Out(i)):
			// as-is
		case rv.Type().ConvertibleTo(ft.Out(i)):
			rv = rv.Convert(ft.Out(i))
		default:
			panic(fmt.Errorf("%w: cannot return %T as %s from %s", mimicerr.ErrInvalidStub, r, ft.Out(i), method))
		}
		if ft.Out(i).Kind() == reflect.Interface {
			iv := reflect.New(ft.Out(i)).Elem()
			iv.Set(rv)
			rv = iv
		}
		out[i] = rv
	}

	if raised != nil {
		if n > 0 && ft.Out(n-1) == errorType {
			ev := reflect.New(errorType).Elem()
			ev.Set(reflect.ValueOf(raised))
			out[n-1] = ev
		} else {
			panic(raised)
		}
	}

	return out
}
