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
// File Name:  input.go
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

	"github.com/klauspost/pgzip"
)

// GenBankInput is an opened flatfile stream, possibly decompressed
type GenBankInput struct {
	io.Reader

	file *os.File
	zpr  *pgzip.Reader
}

// Close releases the decompressor and the underlying file
func (gi *GenBankInput) Close() error {

	if gi.zpr != nil {
		gi.zpr.Close()
	}
	if gi.file != nil {
		return gi.file.Close()
	}

	return nil
}

// OpenGenBankFile opens a flatfile for reading, using pgzip decompression when
// zipp is set or the file name ends in .gz
func OpenGenBankFile(fileName string, zipp bool) (*GenBankInput, error) {

	inFile, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("unable to open input file '%s': %w", fileName, err)
	}

	gi := &GenBankInput{Reader: inFile, file: inFile}

	if zipp || strings.HasSuffix(fileName, ".gz") {

		zpr, err := pgzip.NewReader(inFile)
		if err != nil {
			inFile.Close()
			return nil, fmt.Errorf("unable to create gzip reader for '%s': %w", fileName, err)
		}

		// replace input io.Reader
		gi.Reader = zpr
		gi.zpr = zpr
	}

	return gi, nil
}

// DecompressGenBank wraps a compressed stream, such as a request body
func DecompressGenBank(inp io.Reader) (*GenBankInput, error) {

	zpr, err := pgzip.NewReader(inp)
	if err != nil {
		return nil, fmt.Errorf("unable to create gzip reader: %w", err)
	}

	return &GenBankInput{Reader: zpr, zpr: zpr}, nil
}

// ReadAccessions collects one accession per line, with version numbers removed
func ReadAccessions(inp io.Reader) (map[string]bool, error) {

	accnMap := make(map[string]bool)

	scanr := bufio.NewScanner(inp)

	// read lines of identifiers
	for scanr.Scan() {

		accn := StripAccessionVersion(scanr.Text())

		if accn != "" {
			// add identifier to map
			accnMap[accn] = true
		}
	}

	if err := scanr.Err(); err != nil {
		return nil, err
	}

	return accnMap, nil
}

// ReadAccessionFile reads a file of accessions to use for filtering
func ReadAccessionFile(fileName string) (map[string]bool, error) {

	fl, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("unable to open accession file '%s': %w", fileName, err)
	}
	defer fl.Close()

	return ReadAccessions(fl)
}
