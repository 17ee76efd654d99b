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

// PageStore is the document access needed by [Bind].  Pages are addressed
// by 0-based index; the content values handed out by Content are opaque
// to this package and are only ever passed back to SetContent.
//
// The pdfstore package implements PageStore for PDF documents.
type PageStore interface {
	// NumPages returns the current number of pages.
	NumPages() int

	// Content returns the content of the i-th page.  The returned value
	// must stay valid after later SetContent and AppendBlank calls.
	Content(i int) (any, error)

	// SetContent replaces the content of the i-th page.
	SetContent(i int, content any) error

	// AppendBlank inserts count blank pages at the start or end of the
	// page sequence.  A blank page is a copy of an existing page with its
	// renderable content removed.
	AppendBlank(count int, atStart bool) error
}
