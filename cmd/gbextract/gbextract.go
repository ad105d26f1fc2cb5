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
// File Name:  gbextract.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package main

import (
	"fmt"
	"gbextract/eutils"
	"io"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
)

// outputFile is the fixed name of the extraction table
const outputFile = "genbank_output_D.tsv"

const gbextractUsage = "Usage: gbextract input_file"

const gbextractHelp = `
Overview

  gbextract reads GenBank flatfile records and writes one tab-delimited row
  per record to ` + outputFile + ` in the current directory.

  Columns are Accession, Organism, Country, Note, Cell_Line, Haplogroup,
  and Sequence (position numbers removed).

Usage

  gbextract [options] input_file

Options

  -gzip              Input is gzip compressed (implied by .gz suffix)
  -accessions FILE   Only write records listed in FILE, one per line

Performance

  -chan N            Record channel depth (1 to 128, default is CPU count)
  -timer             Print processing duration and rate
  -stats             Print processor and memory information

Documentation

  -help              Print this message
  -version           Print version number

Example

  efetch -db nuccore -id MT576584 -format gb > mito.gb
  gbextract mito.gb
`

// byteCounter tallies bytes read from the flatfile for rate reporting
type byteCounter struct {
	r io.Reader
	n int
}

func (bc *byteCounter) Read(p []byte) (int, error) {

	n, err := bc.r.Read(p)
	bc.n += n
	return n, err
}

// run processes command-line arguments and returns the program exit status
func run(args []string, outPath string) int {

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "%s\n", gbextractUsage)
		return 1
	}

	// DOCUMENTATION COMMANDS

	switch args[0] {
	case "-version":
		fmt.Printf("%s\n", eutils.GBExtractVersion)
		return 0
	case "-help", "help", "--help":
		fmt.Printf("gbextract %s\n%s\n", eutils.GBExtractVersion, gbextractHelp)
		return 0
	}

	// use pgzip decompression on release files
	zipp := false

	// file of accessions to keep
	accnFile := ""

	// debugging
	stts := false
	timr := false

	inSwitch := true

	// get processing and debugging flags in any order
	for len(args) > 0 {

		inSwitch = true

		switch args[0] {
		case "-gzip":
			zipp = true
		case "-accessions", "-accession":
			if len(args) < 2 {
				eutils.PrintError("Accession file name is missing")
				return 1
			}
			accnFile = args[1]
			// skip past first of two arguments
			args = args[1:]
		case "-chan":
			if len(args) < 2 {
				eutils.PrintError("Communication channel depth is missing")
				return 1
			}
			depth, err := strconv.Atoi(args[1])
			if err != nil {
				eutils.PrintError("Communication channel depth '%s' is not an integer", args[1])
				return 1
			}
			eutils.SetChanDepth(depth)
			args = args[1:]
		case "-stats", "-stat":
			stts = true
		case "-timer":
			timr = true
		default:
			// if not any of the controls, set flag to break out of for loop
			inSwitch = false
		}

		if !inSwitch {
			break
		}

		// skip past argument
		args = args[1:]
	}

	if stts {
		eutils.PrintStats()
		if len(args) < 1 {
			return 0
		}
	}

	// exactly one input file name must remain
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "%s\n", gbextractUsage)
		return 1
	}

	fileName := args[0]

	if strings.HasPrefix(fileName, "-") {
		eutils.PrintError("Unrecognized argument '%s'", fileName)
		return 1
	}

	var accnMap map[string]bool

	if accnFile != "" {
		accns, err := eutils.ReadAccessionFile(accnFile)
		if err != nil {
			eutils.PrintError("%s", err.Error())
			return 1
		}
		if len(accns) < 1 {
			eutils.PrintWarning("No accessions found in '%s', writing all records", accnFile)
		}
		accnMap = accns
	}

	in, err := eutils.OpenGenBankFile(fileName, zipp)
	if err != nil {
		eutils.PrintError("%s", err.Error())
		return 1
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		eutils.PrintError("Unable to create output file '%s' - %s", outPath, err.Error())
		return 1
	}
	defer out.Close()

	wrtr := eutils.NewTSVWriter(out)

	if err := wrtr.WriteHeader(); err != nil {
		eutils.PrintError("Unable to write to '%s' - %s", outPath, err.Error())
		return 1
	}

	counter := &byteCounter{r: in}

	gbk, scanErr := eutils.GenBankExtractor(counter)
	flt := eutils.FilterByAccession(gbk, accnMap)

	if gbk == nil || flt == nil {
		eutils.PrintError("Unable to create GenBank extractor")
		return 1
	}

	// drain output of last channel in service chain
	recordCount, err := eutils.ChanToTSV(flt, wrtr)
	if err != nil {
		eutils.PrintError("Unable to write to '%s' - %s", outPath, err.Error())
		return 1
	}

	// truncated or corrupt input must not pass for a complete table
	if err := scanErr(); err != nil {
		eutils.PrintError("%s", err.Error())
		return 1
	}

	if err := wrtr.Flush(); err != nil {
		eutils.PrintError("Unable to write to '%s' - %s", outPath, err.Error())
		return 1
	}

	if err := out.Close(); err != nil {
		eutils.PrintError("Unable to close '%s' - %s", outPath, err.Error())
		return 1
	}

	debug.FreeOSMemory()

	if timr {
		eutils.PrintDuration("record", recordCount, counter.n)
	}

	fmt.Printf("Extraction complete. Results saved to %s.\n", outPath)

	return 0
}

func main() {

	// skip past executable name
	os.Exit(run(os.Args[1:], outputFile))
}
