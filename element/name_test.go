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

package element_test

import (
	"testing"

	"dirpx.dev/adx/element"
)

// qual implements common.Qualifier.
type qual struct{ name string }

func (q qual) QualifierString() string { return q.name }

// ordered implements common.Orderer.
type ordered struct {
	name  string
	order int
}

func (q ordered) QualifierString() string { return q.name }
func (q ordered) AdviceOrder() int        { return q.order }

// stringer implements fmt.Stringer only.
type stringer struct{}

func (stringer) String() string { return "via-stringer" }

func TestNameOf(t *testing.T) {
	if got := element.NameOf(nil); got != "" {
		t.Fatalf("NameOf(nil): got %q, want \"\"", got)
	}
	if got := element.NameOf("metrics"); got != "metrics" {
		t.Fatalf("NameOf(string): got %q, want \"metrics\"", got)
	}
	if got := element.NameOf(qual{name: "db.primary"}); got != "db.primary" {
		t.Fatalf("NameOf(Qualifier): got %q, want \"db.primary\"", got)
	}
	if got := element.NameOf(stringer{}); got != "via-stringer" {
		t.Fatalf("NameOf(Stringer): got %q, want \"via-stringer\"", got)
	}
	if got := element.NameOf(42); got != "42" {
		t.Fatalf("NameOf(int): got %q, want \"42\"", got)
	}
}

func TestNameOf_QualifierBeatsStringer(t *testing.T) {
	// A type implementing both Qualifier and Stringer must resolve
	// through Qualifier.
	type both struct {
		qual
		stringer
	}
	if got := element.NameOf(both{qual: qual{name: "q"}}); got != "q" {
		t.Fatalf("Qualifier must win over Stringer: got %q", got)
	}
}

func TestOrderOf(t *testing.T) {
	// Explicit non-zero order always wins.
	if got := element.OrderOf(ordered{name: "n", order: 7}, 3); got != 3 {
		t.Fatalf("explicit order: got %d, want 3", got)
	}
	// Zero explicit order defers to the qualifier's intrinsic order.
	if got := element.OrderOf(ordered{name: "n", order: 7}, 0); got != 7 {
		t.Fatalf("intrinsic order: got %d, want 7", got)
	}
	// No Orderer: explicit value passes through, zero included.
	if got := element.OrderOf("plain", 0); got != 0 {
		t.Fatalf("plain qualifier: got %d, want 0", got)
	}
	if got := element.OrderOf(nil, -5); got != -5 {
		t.Fatalf("negative explicit order: got %d, want -5", got)
	}
}
