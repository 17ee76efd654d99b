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

package bookbinding_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zyxw59/bookbinding"
)

func TestImpose(t *testing.T) {
	sig := bookbinding.Signature{Start: 0, Sheets: 4}

	pages := make([]int, 16)
	sig.Impose(func(src, dest int) {
		pages[dest] = src
	})

	want := []int{15, 0, 1, 14, 13, 2, 3, 12, 11, 4, 5, 10, 9, 6, 7, 8}
	if d := cmp.Diff(want, pages); d != "" {
		t.Errorf("unexpected page order (-want +got):\n%s", d)
	}
}

func TestImposeOffset(t *testing.T) {
	sig := bookbinding.Signature{Start: 8, Sheets: 1}

	type placement struct{ Src, Dest int }
	var got []placement
	sig.Impose(func(src, dest int) {
		got = append(got, placement{src, dest})
	})

	want := []placement{{11, 8}, {8, 9}, {9, 10}, {10, 11}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected placements (-want +got):\n%s", d)
	}
}

func TestImposeEmpty(t *testing.T) {
	sig := bookbinding.Signature{Start: 12, Sheets: 0}
	sig.Impose(func(src, dest int) {
		t.Errorf("unexpected placement (%d, %d)", src, dest)
	})
}

func TestPartition(t *testing.T) {
	cases := []struct {
		numPages int
		params   bookbinding.SignatureParams
		want     []bookbinding.Signature
	}{
		{0, bookbinding.SignatureParams{5, 4}, nil},
		// 26 pages, padded to 28: the 8-page remainder is merged
		{28, bookbinding.SignatureParams{5, 4}, []bookbinding.Signature{{0, 7}}},
		{36, bookbinding.SignatureParams{5, 4}, []bookbinding.Signature{{0, 9}}},
		{40, bookbinding.SignatureParams{5, 4}, []bookbinding.Signature{{0, 5}, {20, 5}}},
		{40, bookbinding.SignatureParams{6, 4}, []bookbinding.Signature{{0, 10}}},
		// remainder above the minimum stands alone
		{48, bookbinding.SignatureParams{5, 1}, []bookbinding.Signature{{0, 5}, {20, 5}, {40, 2}}},
		// merge only affects the last signature
		{88, bookbinding.SignatureParams{5, 4}, []bookbinding.Signature{{0, 5}, {20, 5}, {40, 5}, {60, 7}}},
		// no full signature to merge into
		{8, bookbinding.SignatureParams{5, 4}, []bookbinding.Signature{{0, 2}}},
		{80, bookbinding.SignatureParams{5, 0}, []bookbinding.Signature{{0, 5}, {20, 5}, {40, 5}, {60, 5}}},
	}
	for _, test := range cases {
		got := bookbinding.Partition(test.numPages, test.params)
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("Partition(%d, %v): (-want +got):\n%s",
				test.numPages, test.params, d)
		}

		total := 0
		for _, sig := range got {
			total += sig.NumPages()
		}
		if total != test.numPages {
			t.Errorf("Partition(%d, %v): signatures cover %d pages",
				test.numPages, test.params, total)
		}
	}
}

// TestArrangeTotality checks that for a wide range of page counts and
// parameters, every page index occurs exactly once as a source and
// exactly once as a destination.
func TestArrangeTotality(t *testing.T) {
	for numPages := 0; numPages <= 200; numPages += 4 {
		for signatureSize := 1; signatureSize <= 8; signatureSize++ {
			for minRemainder := 0; minRemainder <= 6; minRemainder += 2 {
				params := bookbinding.SignatureParams{
					SignatureSize:        signatureSize,
					MinimumRemainderSize: minRemainder,
				}
				srcSeen := make([]bool, numPages)
				destSeen := make([]bool, numPages)
				err := bookbinding.Arrange(numPages, params, func(src, dest int) {
					if src < 0 || src >= numPages || srcSeen[src] {
						t.Fatalf("Arrange(%d, %v): bad source %d",
							numPages, params, src)
					}
					if dest < 0 || dest >= numPages || destSeen[dest] {
						t.Fatalf("Arrange(%d, %v): bad destination %d",
							numPages, params, dest)
					}
					srcSeen[src] = true
					destSeen[dest] = true
				})
				if err != nil {
					t.Fatal(err)
				}
				for i := 0; i < numPages; i++ {
					if !srcSeen[i] || !destSeen[i] {
						t.Fatalf("Arrange(%d, %v): page %d not placed",
							numPages, params, i)
					}
				}
			}
		}
	}
}

func TestArrangeOddPageCount(t *testing.T) {
	params := bookbinding.SignatureParams{SignatureSize: 5, MinimumRemainderSize: 4}
	err := bookbinding.Arrange(26, params, func(src, dest int) {
		t.Errorf("unexpected placement (%d, %d)", src, dest)
	})
	if err == nil {
		t.Error("expected an error for a page count which is not a multiple of 4")
	}
}
