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
// File Name:  misc.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package eutils

import (
	"strings"
	"unicode"
)

// RemoveDigits deletes every decimal digit, leaving letters and spaces in place
func RemoveDigits(str string) string {

	return strings.Map(func(ch rune) rune {
		if unicode.IsDigit(ch) {
			return -1
		}
		return ch
	}, str)
}

// SplitInTwoLeft loads the first argument if no delimiter is present
func SplitInTwoLeft(str, chr string) (string, string) {

	slash := strings.SplitN(str, chr, 2)
	if len(slash) > 1 {
		return slash[0], slash[1]
	}

	return str, ""
}

// StripAccessionVersion removes a trailing .version from an accession
func StripAccessionVersion(accn string) string {

	accn = strings.TrimSpace(accn)
	accn, _ = SplitInTwoLeft(accn, ".")

	return accn
}
