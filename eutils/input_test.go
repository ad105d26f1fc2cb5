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
// File Name:  input_test.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package eutils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipText(t *testing.T, text string) []byte {

	t.Helper()

	var buf bytes.Buffer

	zpw := pgzip.NewWriter(&buf)
	_, err := zpw.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, zpw.Close())

	return buf.Bytes()
}

func TestOpenGenBankFilePlainAndCompressed(t *testing.T) {

	dir := t.TempDir()

	plain := filepath.Join(dir, "mito.gb")
	require.NoError(t, os.WriteFile(plain, []byte(mitoRecord), 0o644))

	compressed := filepath.Join(dir, "mito.gb.gz")
	require.NoError(t, os.WriteFile(compressed, gzipText(t, mitoRecord), 0o644))

	readRecords := func(fileName string, zipp bool) []GenBankRecord {

		gi, err := OpenGenBankFile(fileName, zipp)
		require.NoError(t, err)
		defer gi.Close()

		gbk, scanErr := GenBankExtractor(gi)
		recs := ChanToSlice(gbk)
		require.NoError(t, scanErr())

		return recs
	}

	fromPlain := readRecords(plain, false)
	fromGzip := readRecords(compressed, false)

	require.Len(t, fromPlain, 1)
	assert.Equal(t, fromPlain, fromGzip)
}

func TestOpenGenBankFileErrors(t *testing.T) {

	dir := t.TempDir()

	_, err := OpenGenBankFile(filepath.Join(dir, "missing.gb"), false)
	assert.Error(t, err)

	notZipped := filepath.Join(dir, "plain.gb")
	require.NoError(t, os.WriteFile(notZipped, []byte(mitoRecord), 0o644))

	_, err = OpenGenBankFile(notZipped, true)
	assert.Error(t, err)
}

func TestDecompressGenBank(t *testing.T) {

	gi, err := DecompressGenBank(bytes.NewReader(gzipText(t, mitoRecord)))
	require.NoError(t, err)
	defer gi.Close()

	gbk, scanErr := GenBankExtractor(gi)
	recs := ChanToSlice(gbk)
	require.NoError(t, scanErr())
	require.Len(t, recs, 1)
	assert.Equal(t, "MT576584", recs[0].Accession)

	_, err = DecompressGenBank(strings.NewReader("not compressed"))
	assert.Error(t, err)
}

func TestReadAccessions(t *testing.T) {

	accns, err := ReadAccessions(strings.NewReader("MT576584.1\n\n  AB000001  \nAB000002.3\n"))
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{"MT576584": true, "AB000001": true, "AB000002": true}, accns)

	_, err = ReadAccessionFile(filepath.Join(t.TempDir(), "none.txt"))
	assert.Error(t, err)
}
