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
// File Name:  tsv.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package eutils

import (
	"bufio"
	"io"
	"strings"
)

// TSVHeader is the fixed first line of every extraction table
const TSVHeader = "Accession\tOrganism\tCountry\tNote\tCell_Line\tHaplogroup\tSequence\n"

// TSVWriter serializes records as tab-delimited rows, fields are written without escaping
type TSVWriter struct {
	wrtr  *bufio.Writer
	count int
}

// NewTSVWriter wraps an output stream with a buffered row writer
func NewTSVWriter(w io.Writer) *TSVWriter {

	return &TSVWriter{wrtr: bufio.NewWriter(w)}
}

// WriteHeader writes the column name line
func (t *TSVWriter) WriteHeader() error {

	_, err := t.wrtr.WriteString(TSVHeader)

	return err
}

// WriteRecord writes one row in Accession, Organism, Country, Note, Cell_Line, Haplogroup, Sequence order
func (t *TSVWriter) WriteRecord(rec GenBankRecord) error {

	if _, err := t.wrtr.WriteString(RecordToRow(rec)); err != nil {
		return err
	}

	t.count++

	return nil
}

// Flush sends buffered rows to the underlying writer
func (t *TSVWriter) Flush() error {

	return t.wrtr.Flush()
}

// Count returns the number of data rows written
func (t *TSVWriter) Count() int {

	return t.count
}

// RecordToRow formats a single record as a newline-terminated row
func RecordToRow(rec GenBankRecord) string {

	return strings.Join(rec.Fields(), "\t") + "\n"
}
