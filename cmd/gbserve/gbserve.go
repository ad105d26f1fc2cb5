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
// File Name:  gbserve.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package main

import (
	"bytes"
	"fmt"
	"gbextract/eutils"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// network server for GenBank flatfile to table extraction

// run "go run ./cmd/gbserve" to start local server listening on port 8080,
// or run "go build ./cmd/gbserve" to generate "gbserve" binary executable

var gbserveHelp = `
GenBank Flatfile Extraction Service

 Convert flatfile records to tab-delimited rows:

  curl -s --data-binary @mito.gb "localhost:8080/extract"

 Compressed upload:

  gzip -c mito.gb |
  curl -s -H "Content-Encoding: gzip" --data-binary @- "localhost:8080/extract"

 Restrict output to selected accessions:

  curl -s --data-binary @mito.gb "localhost:8080/extract?accession=MT576584&accession=MT576585"

Column Names

  curl -s "localhost:8080/header"

Documentation

  curl -s "localhost:8080/help"

  curl -s "localhost:8080/version"

`

var tsvContentType = "text/tab-separated-values; charset=utf-8"

// extractRows streams one table row per flatfile record in the request body
func extractRows(c *gin.Context) {

	var inp io.Reader = c.Request.Body

	if c.GetHeader("Content-Encoding") == "gzip" {

		gi, err := eutils.DecompressGenBank(inp)
		if err != nil {
			c.String(http.StatusBadRequest, "ERROR: %s\n", err.Error())
			return
		}
		defer gi.Close()

		// replace input io.Reader
		inp = gi
	}

	accnMap := make(map[string]bool)
	for _, accn := range c.QueryArray("accession") {
		accn = eutils.StripAccessionVersion(accn)
		if accn != "" {
			accnMap[accn] = true
		}
	}

	// table is buffered so a read error can still be reported as a failed request
	var buf bytes.Buffer

	wrtr := eutils.NewTSVWriter(&buf)

	if err := wrtr.WriteHeader(); err != nil {
		c.String(http.StatusInternalServerError, "ERROR: %s\n", err.Error())
		return
	}

	gbk, scanErr := eutils.GenBankExtractor(inp)
	flt := eutils.FilterByAccession(gbk, accnMap)

	if _, err := eutils.ChanToTSV(flt, wrtr); err != nil {
		c.String(http.StatusInternalServerError, "ERROR: %s\n", err.Error())
		return
	}

	if err := scanErr(); err != nil {
		c.String(http.StatusBadRequest, "ERROR: %s\n", err.Error())
		return
	}

	if err := wrtr.Flush(); err != nil {
		c.String(http.StatusInternalServerError, "ERROR: %s\n", err.Error())
		return
	}

	c.Data(http.StatusOK, tsvContentType, buf.Bytes())
}

// newRouter registers the extraction service endpoints
func newRouter() *gin.Engine {

	// create gin router with default middleware
	r := gin.Default()

	// PRINT HELP TEXT

	r.GET("/help", func(c *gin.Context) {
		c.String(http.StatusOK, gbserveHelp)
	})
	r.POST("/help", func(c *gin.Context) {
		c.String(http.StatusOK, gbserveHelp)
	})

	// PRINT VERSION NUMBER

	r.GET("/version", func(c *gin.Context) {
		c.String(http.StatusOK, eutils.GBExtractVersion)
	})
	r.POST("/version", func(c *gin.Context) {
		c.String(http.StatusOK, eutils.GBExtractVersion)
	})

	// PRINT COLUMN NAMES

	r.GET("/header", func(c *gin.Context) {
		c.Data(http.StatusOK, tsvContentType, []byte(eutils.TSVHeader))
	})

	// FLATFILE TO TABLE EXTRACTION

	r.POST("/extract", extractRows)

	return r
}

func main() {

	// skip past executable name
	args := os.Args[1:]

	// default host and port set up for local test server
	host := "0.0.0.0"
	port := "8080"

	for len(args) > 0 {

		switch args[0] {
		case "-host":
			host = eutils.GetStringArg(args, "Host name")
			args = args[1:]
		case "-port":
			port = eutils.GetStringArg(args, "Port number")
			args = args[1:]
		case "-version":
			fmt.Printf("%s\n", eutils.GBExtractVersion)
			return
		case "-help", "help", "--help":
			fmt.Printf("gbserve %s\n%s", eutils.GBExtractVersion, gbserveHelp)
			return
		default:
			eutils.PrintError("Unrecognized argument '%s'", args[0])
			os.Exit(1)
		}

		// skip past argument
		args = args[1:]
	}

	r := newRouter()

	if err := r.Run(host + ":" + port); err != nil {
		eutils.PrintError("Unable to start server - %s", err.Error())
		os.Exit(1)
	}
}
