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
// File Name:  chan.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package eutils

import (
	"fmt"
	"os"
)

// FilterByAccession passes along records whose unversioned accession is in the set,
// an empty set passes everything through in order
func FilterByAccession(inp <-chan GenBankRecord, accns map[string]bool) <-chan GenBankRecord {

	if inp == nil {
		return nil
	}

	if len(accns) < 1 {
		return inp
	}

	out := make(chan GenBankRecord, chanDepth)
	if out == nil {
		fmt.Fprintf(os.Stderr, "\nERROR: Unable to create accession filter channel\n")
		os.Exit(1)
	}

	filterRecords := func(inp <-chan GenBankRecord, out chan<- GenBankRecord) {

		// close channel when all records have been processed
		defer close(out)

		for rec := range inp {

			accn := StripAccessionVersion(rec.Accession)
			if !accns[accn] {
				continue
			}

			out <- rec
		}
	}

	// launch single filter goroutine
	go filterRecords(inp, out)

	return out
}

// ChanToTSV drains a record channel into a row writer, returning the number of rows written
func ChanToTSV(inp <-chan GenBankRecord, wrtr *TSVWriter) (int, error) {

	if inp == nil || wrtr == nil {
		return 0, nil
	}

	count := 0

	for rec := range inp {

		if err := wrtr.WriteRecord(rec); err != nil {
			// keep draining so the producer goroutine can finish
			for range inp {
			}
			return count, err
		}

		count++
	}

	return count, nil
}

// SliceToChan sends records down a channel
func SliceToChan(recs []GenBankRecord) <-chan GenBankRecord {

	if recs == nil {
		return nil
	}

	out := make(chan GenBankRecord, chanDepth)
	if out == nil {
		return nil
	}

	bufferRecordChannel := func(recs []GenBankRecord, out chan<- GenBankRecord) {

		// close channel when all records have been processed
		defer close(out)

		for _, rec := range recs {
			out <- rec
		}
	}

	// launch single buffering goroutine
	go bufferRecordChannel(recs, out)

	return out
}

// ChanToSlice collects every record remaining in a channel
func ChanToSlice(inp <-chan GenBankRecord) []GenBankRecord {

	if inp == nil {
		return nil
	}

	var recs []GenBankRecord

	for rec := range inp {
		recs = append(recs, rec)
	}

	return recs
}
