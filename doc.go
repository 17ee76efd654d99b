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

// Package bookbinding computes the page order needed to print a document
// as folded signatures for hand binding.
//
// A signature is a bundle of sheets folded together; each sheet carries
// four pages (two on the front of the fold, two on the back).  For the
// pages of the bound book to read in sequence, each signature must be
// imposed "outside in": the first sheet carries the first and last pages
// of the signature, the second sheet the next pair from each end, and so
// on.
//
// [Partition] splits a document into signatures, [Signature.Impose]
// computes the page placements for one signature, and [Bind] runs the
// whole process against a [PageStore].  The arithmetic never touches page
// content; it only maps source page indices to destination page indices.
package bookbinding
