/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reflect

import (
	"errors"
	"reflect"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectNotTransform indicates that the provided type is not a
	// unary transform func(T) T.
	ErrReflectNotTransform = errors.New("reflect: type is not a unary transform func(T) T")
)

// TransformOf returns the unary transform type func(T) T for the value
// type t. This is the registration key type of every advice declaration
// matching a source of type t.
func TransformOf(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	return reflect.FuncOf([]reflect.Type{t}, []reflect.Type{t}, false), nil
}

// TransformElem validates that ft is a unary transform func(T) T and
// returns T.
//
// A type qualifies iff it is a non-variadic func with exactly one input,
// exactly one output, and identical input and output types. Anything else
// yields ErrReflectNotTransform.
func TransformElem(ft reflect.Type) (reflect.Type, error) {
	if ft == nil {
		return nil, ErrReflectNilType
	}
	if ft.Kind() != reflect.Func ||
		ft.IsVariadic() ||
		ft.NumIn() != 1 ||
		ft.NumOut() != 1 ||
		ft.In(0) != ft.Out(0) {
		return nil, ErrReflectNotTransform
	}
	return ft.In(0), nil
}
