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

package element

import (
	"fmt"

	"dirpx.dev/adx/axapi/common"
)

// NameOf derives the logical name from a qualifier value.
//
// Derivation order:
//
//  1. nil             -> "" (the default, unqualified namespace)
//  2. string          -> the string verbatim
//  3. common.Qualifier -> QualifierString()
//  4. fmt.Stringer    -> String()
//  5. anything else   -> fmt.Sprintf("%v", q)
//
// Two declarations match iff their derived names are equal, so qualifier
// values used across packages should implement common.Qualifier to pin the
// derivation explicitly.
func NameOf(q any) string {
	switch v := q.(type) {
	case nil:
		return ""
	case string:
		return v
	case common.Qualifier:
		return v.QualifierString()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// OrderOf returns the effective application order for an advice
// declaration: an explicit non-zero order wins; otherwise a qualifier
// implementing common.Orderer supplies its intrinsic order.
func OrderOf(q any, explicit int) int {
	if explicit != 0 {
		return explicit
	}
	if o, ok := q.(common.Orderer); ok {
		return o.AdviceOrder()
	}
	return explicit
}
