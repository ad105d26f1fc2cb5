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
// File Name:  misc_test.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package eutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveDigits(t *testing.T) {

	assert.Equal(t, " acgt ", RemoveDigits("1 acgt 10"))
	assert.Equal(t, "", RemoveDigits("0123456789"))
	assert.Equal(t, "ACGT", RemoveDigits("ACGT"))
}

func TestSplitInTwoLeft(t *testing.T) {

	fst, scd := SplitInTwoLeft("MT576584.1", ".")
	assert.Equal(t, "MT576584", fst)
	assert.Equal(t, "1", scd)

	fst, scd = SplitInTwoLeft("MT576584", ".")
	assert.Equal(t, "MT576584", fst)
	assert.Equal(t, "", scd)
}

func TestStripAccessionVersion(t *testing.T) {

	assert.Equal(t, "NC_012920", StripAccessionVersion(" NC_012920.1 "))
	assert.Equal(t, "", StripAccessionVersion("   "))
}
