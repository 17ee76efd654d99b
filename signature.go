// github.com/zyxw59/bookbinding - rearrange pages for printing as folded signatures
// Copyright (C) 2026  The bookbinding authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bookbinding

import "fmt"

// SignatureParams controls how a document is split into signatures.
type SignatureParams struct {
	// SignatureSize is the preferred number of sheets per signature.
	// One sheet holds four pages.
	SignatureSize int

	// MinimumRemainderSize is the minimum acceptable number of sheets in
	// the final signature.  If the pages left over after the full
	// signatures would form a signature with fewer sheets than this, they
	// are merged into the previous signature, making it extra long,
	// instead of standing alone.
	MinimumRemainderSize int
}

// Signature is a contiguous run of pages which is folded and bound as one
// unit.  It covers the page indices [Start, Start+4*Sheets).
type Signature struct {
	Start  int // index of the first page
	Sheets int
}

// NumPages returns the number of pages covered by the signature.
func (s Signature) NumPages() int {
	return s.Sheets * 4
}

// Partition splits a document of numPages pages into signatures.  The
// signatures are returned in increasing page order; together they cover
// every page index in [0, numPages) exactly once.
//
// numPages must be a non-negative multiple of 4.  Use [Arrange] or [Bind]
// if this is not already guaranteed.
func Partition(numPages int, params SignatureParams) []Signature {
	pagesPerSignature := params.SignatureSize * 4
	numFull := numPages / pagesPerSignature
	remainder := numPages - numFull*pagesPerSignature

	// A too-thin final signature is merged into the preceding one,
	// giving one extra-long signature instead of a short one.
	if remainder > 0 && remainder <= params.MinimumRemainderSize*4 && numFull >= 1 {
		numFull--
		remainder += pagesPerSignature
	}

	var res []Signature
	for i := 0; i < numFull; i++ {
		res = append(res, Signature{
			Start:  i * pagesPerSignature,
			Sheets: params.SignatureSize,
		})
	}
	if remainder > 0 {
		res = append(res, Signature{
			Start:  numFull * pagesPerSignature,
			Sheets: (remainder + 3) / 4,
		})
	}
	return res
}

// Impose computes the page placements for one signature.  For every sheet
// it calls emit four times, once per page face in the order the faces are
// laid out: emit(src, dest) means that the page at index src in the
// original page order must appear at index dest in the imposed order.
//
// Sheets are filled outside in: the first sheet carries the signature's
// last and first pages, and successive sheets work inward from both ends
// at once, so that the folded and stacked sheets read sequentially.
func (s Signature) Impose(emit func(src, dest int)) {
	end := s.Start + s.Sheets*4
	for i := 0; i < s.Sheets; i++ {
		k := i * 2
		dest := s.Start + i*4
		emit(end-(k+1), dest)
		emit(s.Start+k, dest+1)
		emit(s.Start+k+1, dest+2)
		emit(end-(k+2), dest+3)
	}
}

// Arrange computes the page placements for a whole document, partitioning
// it into signatures and imposing each in turn.  It calls emit once per
// page, in sheet order within each signature.
//
// numPages must be a non-negative multiple of 4, since every sheet holds
// exactly four pages; otherwise an error is returned and emit is never
// called.
func Arrange(numPages int, params SignatureParams, emit func(src, dest int)) error {
	if numPages < 0 || numPages%4 != 0 {
		return fmt.Errorf("page count %d is not a multiple of 4", numPages)
	}
	for _, sig := range Partition(numPages, params) {
		sig.Impose(emit)
	}
	return nil
}
