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
// File Name:  gbserve_test.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package main

import (
	"bytes"
	"gbextract/eutils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneRecord = `ACCESSION   MT576584
  ORGANISM  Homo sapiens
FEATURES             Location/Qualifiers
                     /country="Spain"
ORIGIN
        1 gatcacaggt
//
ACCESSION   MT576585
  ORGANISM  Homo sapiens
ORIGIN
        1 ttgg
//
`

func serve(t *testing.T, req *http.Request) *httptest.ResponseRecorder {

	t.Helper()

	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)

	return rec
}

func TestExtractEndpoint(t *testing.T) {

	req := httptest.NewRequest(http.MethodPost, "/extract", strings.NewReader(oneRecord))
	rec := serve(t, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, tsvContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t,
		eutils.TSVHeader+
			"MT576584\tHomo sapiens\tSpain\t\t\t\t gatcacaggt\n"+
			"MT576585\tHomo sapiens\t\t\t\t\t ttgg\n",
		rec.Body.String())
}

func TestExtractEndpointAccessionFilter(t *testing.T) {

	req := httptest.NewRequest(http.MethodPost, "/extract?accession=MT576585.1", strings.NewReader(oneRecord))
	rec := serve(t, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, eutils.TSVHeader+"MT576585\tHomo sapiens\t\t\t\t\t ttgg\n", rec.Body.String())
}

func TestExtractEndpointGzip(t *testing.T) {

	var buf bytes.Buffer

	zpw := pgzip.NewWriter(&buf)
	_, err := zpw.Write([]byte(oneRecord))
	require.NoError(t, err)
	require.NoError(t, zpw.Close())

	req := httptest.NewRequest(http.MethodPost, "/extract", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rec := serve(t, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, strings.Count(rec.Body.String(), "\n"))

	bad := httptest.NewRequest(http.MethodPost, "/extract", strings.NewReader(oneRecord))
	bad.Header.Set("Content-Encoding", "gzip")
	rec = serve(t, bad)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractEndpointTruncatedGzip(t *testing.T) {

	var buf bytes.Buffer

	zpw := pgzip.NewWriter(&buf)
	_, err := zpw.Write([]byte(strings.Repeat(oneRecord, 4000)))
	require.NoError(t, err)
	require.NoError(t, zpw.Close())

	data := buf.Bytes()

	req := httptest.NewRequest(http.MethodPost, "/extract", bytes.NewReader(data[:len(data)/2]))
	req.Header.Set("Content-Encoding", "gzip")
	rec := serve(t, req)

	// no partial table is returned
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "ERROR: "))
}

func TestDocumentationEndpoints(t *testing.T) {

	rec := serve(t, httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.Equal(t, eutils.GBExtractVersion, rec.Body.String())

	rec = serve(t, httptest.NewRequest(http.MethodGet, "/header", nil))
	assert.Equal(t, eutils.TSVHeader, rec.Body.String())

	rec = serve(t, httptest.NewRequest(http.MethodPost, "/help", nil))
	assert.Contains(t, rec.Body.String(), "/extract")
}
