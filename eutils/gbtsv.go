// ===========================================================================
//
//                            PUBLIC DOMAIN NOTICE
//            National Center for Biotechnology Information (NCBI)
//
//  This software/database is a "United States Government Work" under the
//  terms of the United States Copyright Act. It was written as part of
//  the author's official duties as a United States Government employee and
//  thus cannot be copyrighted. This software/database is freely available
//  to the public for use. The National Library of Medicine and the U.S.
//  Government do not place any restriction on its use or reproduction.
//  We would, however, appreciate having the NCBI and the author cited in
//  any work or product based on this material.
//
//  Although all reasonable efforts have been taken to ensure the accuracy
//  and reliability of the software and data, the NLM and the U.S.
//  Government do not and cannot warrant the performance or results that
//  may be obtained by using this software or data. The NLM and the U.S.
//  Government disclaim all warranties, express or implied, including
//  warranties of performance, merchantability or fitness for any particular
//  purpose.
//
// ===========================================================================
//
// File Name:  gbtsv.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package eutils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// GENBANK FLATFILE TO TAB-DELIMITED ROW EXTRACTION

// GenBankRecord holds the fields extracted from one flatfile record
type GenBankRecord struct {
	Accession  string
	Organism   string
	Country    string
	Note       string
	CellLine   string
	Haplogroup string
	Sequence   string
}

// Fields returns record values in output column order
func (rec GenBankRecord) Fields() []string {

	return []string{
		rec.Accession,
		rec.Organism,
		rec.Country,
		rec.Note,
		rec.CellLine,
		rec.Haplogroup,
		rec.Sequence,
	}
}

// parser states
const (
	scanningLines = iota
	collectingSequence
)

// ParserContext carries the in-progress record and region flags across lines
type ParserContext struct {
	current GenBankRecord

	inSource   bool
	inFeatures bool

	state int
	seq   strings.Builder
}

// NewParserContext returns an empty context positioned before the first record
func NewParserContext() *ParserContext {

	return &ParserContext{}
}

// InSourceRegion reports whether a SOURCE line is still in effect
func (ctx *ParserContext) InSourceRegion() bool {

	return ctx.inSource
}

// InFeaturesRegion reports whether a FEATURES line was seen for the current record
func (ctx *ParserContext) InFeaturesRegion() bool {

	return ctx.inFeatures
}

// CollectingSequence reports whether the context is inside an ORIGIN block
func (ctx *ParserContext) CollectingSequence() bool {

	return ctx.state == collectingSequence
}

// Current returns a copy of the partially assembled record
func (ctx *ParserContext) Current() GenBankRecord {

	return ctx.current
}

// resetRecordFields clears the record after emission, but leaves inSource alone
func (ctx *ParserContext) resetRecordFields() {

	ctx.current = GenBankRecord{}
	ctx.inFeatures = false
}

// closeSourceRegion is only reached from a bare // line outside of a sequence block
func (ctx *ParserContext) closeSourceRegion() {

	ctx.inSource = false
}

// completeRecord strips position numbers from the collected sequence and returns the record
func (ctx *ParserContext) completeRecord() GenBankRecord {

	ctx.current.Sequence = RemoveDigits(ctx.seq.String())
	ctx.seq.Reset()
	ctx.state = scanningLines

	rec := ctx.current
	ctx.resetRecordFields()

	return rec
}

// ProcessLine advances the state machine by one raw input line, returning a record when one is complete
func (ctx *ParserContext) ProcessLine(line string) (GenBankRecord, bool) {

	line = strings.TrimSuffix(line, "\r")

	if ctx.state == collectingSequence {

		// terminator is tested before trimming, indented slashes are sequence text
		if strings.HasPrefix(line, "//") {
			return ctx.completeRecord(), true
		}

		ctx.seq.WriteString(strings.TrimSpace(line))

		return GenBankRecord{}, false
	}

	line = strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(line, "ACCESSION"):
		ctx.current.Accession = extractAccession(line)
	case strings.HasPrefix(line, "ORGANISM"):
		ctx.current.Organism = extractOrganism(line)
	case strings.HasPrefix(line, "country"):
		ctx.current.Country = extractQuotedValue(line)
	case strings.HasPrefix(line, "note"):
		ctx.current.Note = extractQuotedValue(line)
	case strings.HasPrefix(line, "/cell_line"):
		ctx.current.CellLine = extractQuotedValue(line)
	case strings.HasPrefix(line, "SOURCE"):
		ctx.inSource = true
	case strings.HasPrefix(line, "FEATURES"):
		ctx.inFeatures = true
	case strings.HasPrefix(line, "ORIGIN"):
		ctx.seq.Reset()
		ctx.state = collectingSequence
	case ctx.inFeatures && strings.Contains(line, "/country="):
		ctx.current.Country = extractQuotedValue(line)
	case ctx.inFeatures && strings.Contains(line, "/note=") && ctx.current.Note == "":
		// first non-empty note wins
		ctx.current.Note = extractQuotedValue(line)
	case ctx.inFeatures && strings.Contains(line, "/cell_line="):
		ctx.current.CellLine = extractQuotedValue(line)
	case ctx.inSource && strings.Contains(line, "/haplogroup="):
		ctx.current.Haplogroup = extractQuotedValue(line)
	case strings.HasPrefix(line, "//"):
		ctx.closeSourceRegion()
	}

	return GenBankRecord{}, false
}

// Finish flushes a record left open when the input ends
func (ctx *ParserContext) Finish() (GenBankRecord, bool) {

	if ctx.state == collectingSequence {
		// ORIGIN block without terminator still produces its row
		return ctx.completeRecord(), true
	}

	if ctx.current.Accession == "" {
		return GenBankRecord{}, false
	}

	rec := ctx.current
	ctx.resetRecordFields()

	return rec, true
}

// extractAccession returns the second whitespace-separated token
func extractAccession(line string) string {

	cols := strings.Fields(line)
	if len(cols) < 2 {
		return ""
	}

	return cols[1]
}

// extractOrganism returns the text following the last run of two spaces
func extractOrganism(line string) string {

	parts := strings.Split(line, "  ")

	return strings.TrimSpace(parts[len(parts)-1])
}

// extractQuotedValue returns the qualifier value after the last equal sign,
// with one layer of enclosing double quotes removed, or an empty string if
// there is no equal sign
func extractQuotedValue(line string) string {

	pos := strings.LastIndex(line, "=")
	if pos < 0 {
		return ""
	}

	val := strings.TrimSpace(line[pos+1:])
	val = strings.TrimPrefix(val, "\"")
	val = strings.TrimSuffix(val, "\"")

	return val
}

// ScanGenBank makes a single forward pass over flatfile text, passing each completed record to proc
func ScanGenBank(inp io.Reader, proc func(GenBankRecord) error) (int, error) {

	if inp == nil {
		return 0, fmt.Errorf("no GenBank input supplied")
	}

	ctx := NewParserContext()

	// lines of any length are accepted
	rdr := bufio.NewReader(inp)

	count := 0

	send := func(rec GenBankRecord) error {

		count++
		if proc == nil {
			return nil
		}
		return proc(rec)
	}

	for {

		line, err := rdr.ReadString('\n')

		if line != "" {
			rec, ok := ctx.ProcessLine(strings.TrimSuffix(line, "\n"))
			if ok {
				if err := send(rec); err != nil {
					return count, err
				}
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("reading GenBank input: %w", err)
		}
	}

	if rec, ok := ctx.Finish(); ok {
		if err := send(rec); err != nil {
			return count, err
		}
	}

	return count, nil
}

// GenBankExtractor reads flatfiles and sends extracted records down a channel,
// the returned function reports any read error once the channel is drained
func GenBankExtractor(inp io.Reader) (<-chan GenBankRecord, func() error) {

	if inp == nil {
		return nil, func() error { return nil }
	}

	out := make(chan GenBankRecord, chanDepth)
	if out == nil {
		fmt.Fprintf(os.Stderr, "\nERROR: Unable to create GenBank extractor channel\n")
		os.Exit(1)
	}

	// written before the channel is closed
	var scanErr error

	extractGenBank := func(inp io.Reader, out chan<- GenBankRecord) {

		// close channel when all records have been sent
		defer close(out)

		_, scanErr = ScanGenBank(inp, func(rec GenBankRecord) error {
			out <- rec
			return nil
		})
	}

	// launch single extractor goroutine, context is never shared
	go extractGenBank(inp, out)

	return out, func() error { return scanErr }
}
