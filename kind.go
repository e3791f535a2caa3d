// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ndslice

// kindID discriminates the three stride representations at runtime. The
// static side of the distinction is the [Kind] type parameter.
type kindID int8

const (
	kindContiguous kindID = iota
	kindCanonical
	kindUniversal
)

// Kind classifies how much stride information a [Slice] carries in its type.
//
//   - [Contiguous]: row-major layout, strides entirely implied by the shape.
//     No stride array is stored.
//   - [Canonical]: the innermost stride is 1 by invariant; the outer n-1
//     strides are stored explicitly.
//   - [Universal]: all n strides are stored; nothing further is implied.
//
// Downgrades (Contiguous to Canonical to Universal) are always valid and
// never inspect elements. Upgrades are assumptions the caller asserts
// ([AssumeCanonical], [AssumeContiguous]); the assertion is verified.
type Kind interface {
	Contiguous | Canonical | Universal

	id() kindID
}

// Contiguous marks a slice whose elements are laid out in row-major order
// with no gaps. See [Kind].
type Contiguous struct{}

// Canonical marks a slice whose innermost stride is 1. See [Kind].
type Canonical struct{}

// Universal marks a slice with fully explicit strides. See [Kind].
type Universal struct{}

func (Contiguous) id() kindID { return kindContiguous }
func (Canonical) id() kindID  { return kindCanonical }
func (Universal) id() kindID  { return kindUniversal }

// kindOf returns the runtime discriminant of a kind parameter.
func kindOf[K Kind]() kindID {
	var k K
	return k.id()
}
