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

// Package pdfstore gives the bookbinding package page-level access to PDF
// documents.
package pdfstore

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

var (
	errInvalidPageTree = errors.New("invalid page tree")
	errNoPages         = errors.New("document does not have any pages")
)

// Store provides indexed access to the pages of a PDF document held in
// memory.  It implements the bookbinding.PageStore interface.
//
// The Store caches the list of page references when it is created, so the
// underlying document's page tree must not be modified other than through
// the Store.
type Store struct {
	doc  *pdf.Data
	refs []pdf.Reference
}

// New creates a Store for the given document.
func New(doc *pdf.Data) (*Store, error) {
	refs, err := pagetree.FindPages(doc)
	if err != nil {
		return nil, err
	}
	for _, ref := range refs {
		if ref == 0 {
			return nil, errInvalidPageTree
		}
	}
	return &Store{doc: doc, refs: refs}, nil
}

// NumPages returns the number of pages in the document.
func (s *Store) NumPages() int {
	return len(s.refs)
}

// Content returns a copy of the i-th page dictionary.  The copy is not
// affected by later SetContent calls, so the contents of all pages can be
// captured before any page is overwritten.
func (s *Store) Content(i int) (any, error) {
	dict, err := pdf.GetDict(s.doc, s.refs[i])
	if err != nil {
		return nil, err
	}
	return maps.Clone(dict), nil
}

// SetContent stores the given page dictionary as the i-th page.
func (s *Store) SetContent(i int, content any) error {
	dict, ok := content.(pdf.Dict)
	if !ok {
		return fmt.Errorf("page content has type %T, not pdf.Dict", content)
	}
	return overwrite(s.doc, s.refs[i], dict)
}

// overwrite replaces the object stored under ref.  Data.Put refuses to
// write to a reference which already holds an object, so the slot has to
// be cleared first.
func overwrite(doc *pdf.Data, ref pdf.Reference, obj pdf.Object) error {
	err := doc.Put(ref, nil)
	if err != nil {
		return err
	}
	return doc.Put(ref, obj)
}

// AppendBlank inserts count blank pages at the start or end of the
// document.  The new pages are copies of the document's first page with
// the page contents removed, so they keep the original page size and
// attributes.
//
// A single page is attached directly under the root node of the page
// tree; a batch of pages is wrapped in one new intermediate node.
func (s *Store) AppendBlank(count int, atStart bool) error {
	if count == 0 {
		return nil
	}
	if len(s.refs) == 0 {
		return errNoPages
	}

	first, err := pdf.GetDict(s.doc, s.refs[0])
	if err != nil {
		return err
	}
	blank := maps.Clone(first)
	delete(blank, "Contents")

	rootRef := s.doc.GetMeta().Catalog.Pages
	root, err := pdf.GetDict(s.doc, rootRef)
	if err != nil {
		return err
	}
	if root == nil {
		return errInvalidPageTree
	}

	newNodeRef := s.doc.Alloc()
	var pageRefs []pdf.Reference
	if count == 1 {
		blank["Parent"] = rootRef
		err = s.doc.Put(newNodeRef, blank)
		if err != nil {
			return err
		}
		pageRefs = []pdf.Reference{newNodeRef}
	} else {
		kids := make(pdf.Array, count)
		pageRefs = make([]pdf.Reference, count)
		for i := range kids {
			pageRef := s.doc.Alloc()
			page := maps.Clone(blank)
			page["Parent"] = newNodeRef
			err = s.doc.Put(pageRef, page)
			if err != nil {
				return err
			}
			kids[i] = pageRef
			pageRefs[i] = pageRef
		}
		node := pdf.Dict{
			"Type":   pdf.Name("Pages"),
			"Parent": rootRef,
			"Kids":   kids,
			"Count":  pdf.Integer(count),
		}
		err = s.doc.Put(newNodeRef, node)
		if err != nil {
			return err
		}
	}

	numPages, err := pdf.GetInteger(s.doc, root["Count"])
	if err != nil {
		return err
	}
	kids, err := pdf.GetArray(s.doc, root["Kids"])
	if err != nil {
		return err
	}
	if atStart {
		kids = append(pdf.Array{newNodeRef}, kids...)
		s.refs = append(pageRefs, s.refs...)
	} else {
		kids = append(kids, newNodeRef)
		s.refs = append(s.refs, pageRefs...)
	}
	root["Count"] = numPages + pdf.Integer(count)
	root["Kids"] = kids
	return overwrite(s.doc, rootRef, root)
}
