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

// Pdf-booklet rearranges the pages of a PDF file so that the printed
// document can be folded and bound as signatures.
//
// Usage:
//
//	pdf-booklet [options] input.pdf output.pdf
//
// The tool prints the resulting signature plan, one line per signature
// with the 1-based page range and the number of sheets, so that the
// printed stack can be separated into signatures for folding.
package main

import (
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/pdf"

	"github.com/zyxw59/bookbinding"
	"github.com/zyxw59/bookbinding/pdfstore"
)

func main() {
	signatureSize := flag.Int("s", 6, "preferred number of sheets per signature")
	minRemainder := flag.Int("m", 4, "minimum number of sheets in the last signature")
	endPages := flag.Bool("end-pages", false, "add an extra blank page at the start and end of the document")
	force := flag.Bool("f", false, "overwrite output file if it exists")
	dryRun := flag.Bool("n", false, "print the signature plan without writing an output file")
	flag.Parse()

	if flag.NArg() != 2 && !(*dryRun && flag.NArg() == 1) {
		fmt.Fprintln(os.Stderr, "error: need an input and an output file")
		flag.Usage()
		os.Exit(1)
	}

	params := bookbinding.SignatureParams{
		SignatureSize:        *signatureSize,
		MinimumRemainderSize: *minRemainder,
	}

	err := run(flag.Arg(0), flag.Arg(1), params, *endPages, *force, *dryRun)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(input, output string, params bookbinding.SignatureParams, endPages, force, dryRun bool) error {
	if params.SignatureSize < 1 {
		return fmt.Errorf("signature size %d is not positive", params.SignatureSize)
	}
	if params.MinimumRemainderSize < 0 {
		return fmt.Errorf("minimum remainder size %d is negative", params.MinimumRemainderSize)
	}

	if !dryRun && !force {
		if _, err := os.Stat(output); !os.IsNotExist(err) {
			return fmt.Errorf("output file %q already exists", output)
		}
	}

	fd, err := os.Open(input)
	if err != nil {
		return err
	}
	doc, err := pdf.Read(fd, nil)
	fd.Close()
	if err != nil {
		return err
	}

	store, err := pdfstore.New(doc)
	if err != nil {
		return err
	}

	if dryRun {
		numPages := store.NumPages()
		if endPages {
			numPages += 2
		}
		numPages = (numPages + 3) / 4 * 4
		printPlan(bookbinding.Partition(numPages, params))
		return nil
	}

	signatures, err := bookbinding.Bind(store, params, endPages)
	if err != nil {
		return err
	}
	printPlan(signatures)

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	err = doc.Write(out)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func printPlan(signatures []bookbinding.Signature) {
	for i, sig := range signatures {
		fmt.Printf("signature %d: pages %d-%d (%d sheets)\n",
			i+1, sig.Start+1, sig.Start+sig.NumPages(), sig.Sheets)
	}
}
