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

package field

// Magic is a lazy n-by-n magic square, indexed by row-major flat index.
//
// The construction is selected on n mod 4: the Siamese method for odd n,
// the diagonal-complement method when 4 divides n, and Conway's LUX method
// for the remaining singly even orders. n must be positive and not 2;
// no 2-by-2 magic square exists.
type Magic struct {
	n int
}

// NewMagic constructs a [Magic] of order n.
func NewMagic(n int) Magic {
	if n <= 0 || n == 2 {
		panic("field: no magic square of that order")
	}
	return Magic{n}
}

// Order returns n.
func (m Magic) Order() int {
	return m.n
}

// At implements [Field].
func (m Magic) At(index int) int {
	row, col := index/m.n, index%m.n
	switch {
	case m.n%2 == 1:
		return siamese(m.n, row, col)
	case m.n%4 == 0:
		return diagonalComplement(m.n, row, col)
	default:
		return lux(m.n, row, col)
	}
}

// siamese places v at the cell reached from (0, n/2) by v-1 up-right steps
// with a downward step at each block boundary. Solving the two placement
// congruences for the block number a and the in-block step b inverts the
// construction, so each cell is computed independently.
func siamese(n, row, col int) int {
	mid := (n - 1) / 2
	a := mod(row+col-mid, n)
	b := mod(2*a-row, n)
	return a*n + b + 1
}

// diagonalComplement fills row-major and complements every cell on a
// diagonal of its aligned 4-by-4 block.
func diagonalComplement(n, row, col int) int {
	v := row*n + col + 1
	if row%4 == col%4 || row%4+col%4 == 3 {
		v = n*n + 1 - v
	}
	return v
}

// lux expands a Siamese square of odd order m = n/2 into 2-by-2 blocks
// stamped with Conway's L, U and X patterns: k+1 rows of L, one row of U,
// k-1 rows of X for n = 4k+2, with the central U and the L above it
// exchanged.
func lux(n, row, col int) int {
	k := (n - 2) / 4
	m := 2*k + 1
	srow, scol := row/2, col/2
	s := siamese(m, srow, scol)

	var pattern [2][2]int
	switch {
	case srow < k+1:
		pattern = [2][2]int{{4, 1}, {2, 3}} // L
	case srow == k+1:
		pattern = [2][2]int{{1, 4}, {2, 3}} // U
	default:
		pattern = [2][2]int{{1, 4}, {3, 2}} // X
	}
	if scol == m/2 {
		// The exchanged pair in the central column.
		if srow == k {
			pattern = [2][2]int{{1, 4}, {2, 3}} // U
		} else if srow == k+1 {
			pattern = [2][2]int{{4, 1}, {2, 3}} // L
		}
	}
	return 4*(s-1) + pattern[row%2][col%2]
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
