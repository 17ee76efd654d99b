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

// Bind rearranges the pages of store so that the document, printed four
// pages per sheet and folded, binds into signatures which read in
// sequence.
//
// If endPages is set, one extra blank page is inserted at the very start
// and one at the very end first.  The page count is then padded to the
// next multiple of 4 with blank pages at the end, and every page is moved
// to the position computed by [Partition] and [Signature.Impose].
//
// Bind returns the partition that was applied, so that callers can report
// where each signature begins.
func Bind(store PageStore, params SignatureParams, endPages bool) ([]Signature, error) {
	if params.SignatureSize < 1 {
		return nil, fmt.Errorf("signature size %d is not positive", params.SignatureSize)
	}
	if params.MinimumRemainderSize < 0 {
		return nil, fmt.Errorf("minimum remainder size %d is negative", params.MinimumRemainderSize)
	}

	if endPages {
		if err := store.AppendBlank(1, true); err != nil {
			return nil, err
		}
		if err := store.AppendBlank(1, false); err != nil {
			return nil, err
		}
	}
	if pad := (4 - store.NumPages()%4) % 4; pad > 0 {
		if err := store.AppendBlank(pad, false); err != nil {
			return nil, err
		}
	}

	numPages := store.NumPages()

	// Snapshot the page contents before any page is overwritten.  Every
	// placement reads from this snapshot, so the order in which the
	// placements are applied does not matter.
	snapshot := make([]any, numPages)
	for i := range snapshot {
		content, err := store.Content(i)
		if err != nil {
			return nil, err
		}
		snapshot[i] = content
	}

	signatures := Partition(numPages, params)
	var applyErr error
	for _, sig := range signatures {
		sig.Impose(func(src, dest int) {
			if applyErr != nil {
				return
			}
			applyErr = store.SetContent(dest, snapshot[src])
		})
	}
	if applyErr != nil {
		return nil, applyErr
	}
	return signatures, nil
}
