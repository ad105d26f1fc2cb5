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
// File Name:  utils.go
//
// Author:  Jonathan Kans
//
// ==========================================================================

package eutils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gedex/inflector"
	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// GBExtractVersion is the current release number
const GBExtractVersion = "1.2"

// PERFORMANCE PARAMETERS

// channel depth between pipeline stages, records stay in input order regardless
var (
	chanDepth int
	nCPU      int
)

// program execution timer
var (
	startTime time.Time
)

// SetChanDepth overrides the communication channel depth, values outside 1 to 128 restore the default
func SetChanDepth(chnDepth int) {

	if chnDepth < 1 || chnDepth > 128 {
		chnDepth = nCPU
	}

	chanDepth = chnDepth
}

// ChanDepth returns the communication channel depth
func ChanDepth() int {

	return chanDepth
}

// DIAGNOSTIC MESSAGES

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	warnLabel  = color.New(color.FgYellow, color.Bold)
)

// PrintError writes a highlighted error message to stderr
func PrintError(format string, args ...interface{}) {

	fmt.Fprintf(os.Stderr, "\n%s %s\n", errorLabel.Sprint("ERROR:"), fmt.Sprintf(format, args...))
}

// PrintWarning writes a highlighted warning message to stderr
func PrintWarning(format string, args ...interface{}) {

	fmt.Fprintf(os.Stderr, "\n%s %s\n", warnLabel.Sprint("WARNING:"), fmt.Sprintf(format, args...))
}

// GetStringArg returns a string argument, reporting an error if no remaining arguments
func GetStringArg(args []string, name string) string {

	if len(args) < 2 {
		PrintError("%s is missing", name)
		os.Exit(1)
	}
	return args[1]
}

// TIMING AND STATISTICS

// FormatDuration describes processing rate, with digit grouping and pluralized units
func FormatDuration(name string, recordCount, byteCount int, seconds float64) string {

	// used for adding commas every 3 digits
	p := message.NewPrinter(language.English)

	unit := name
	if recordCount != 1 {
		unit = inflector.Pluralize(name)
	}

	prec := 3
	if seconds >= 100 {
		prec = 1
	} else if seconds >= 10 {
		prec = 2
	}

	var buffer strings.Builder

	if recordCount > 0 {
		buffer.WriteString(p.Sprintf("Processed %d %s", recordCount, unit))
	} else {
		buffer.WriteString("Processing completed")
	}
	buffer.WriteString(fmt.Sprintf(" in %.*f seconds", prec, seconds))

	if seconds >= 0.001 && recordCount > 0 {
		rate := int(float64(recordCount) / seconds)
		buffer.WriteString(p.Sprintf(" (%d %s/second", rate, inflector.Pluralize(name)))
		if byteCount > 0 {
			rate := int(float64(byteCount) / seconds)
			if rate >= 1000000 {
				buffer.WriteString(p.Sprintf(", %d megabytes/second", rate/1000000))
			} else if rate >= 1000 {
				buffer.WriteString(p.Sprintf(", %d kilobytes/second", rate/1000))
			} else {
				buffer.WriteString(p.Sprintf(", %d bytes/second", rate))
			}
		}
		buffer.WriteString(")")
	}

	return buffer.String()
}

// PrintDuration prints processing rate and program duration
func PrintDuration(name string, recordCount, byteCount int) {

	duration := time.Since(startTime)
	seconds := float64(duration.Nanoseconds()) / 1e9

	fmt.Fprintf(os.Stderr, "\n%s\n\n", FormatDuration(name, recordCount, byteCount, seconds))
}

// WriteStats writes processor, memory, and tuning information
func WriteStats(w io.Writer) {

	fmt.Fprintf(w, "Thrd %d\n", nCPU)
	if cpuid.CPU.ThreadsPerCore > 0 {
		fmt.Fprintf(w, "Core %d\n", nCPU/cpuid.CPU.ThreadsPerCore)
	}
	if cpuid.CPU.LogicalCores > 0 {
		fmt.Fprintf(w, "Sock %d\n", nCPU/cpuid.CPU.LogicalCores)
	}
	if cpuid.CPU.BrandName != "" {
		fmt.Fprintf(w, "Brnd %s\n", cpuid.CPU.BrandName)
	}
	fmt.Fprintf(w, "Mmry %d\n", memory.TotalMemory()/(1024*1024*1024))

	fmt.Fprintf(w, "Chan %d\n", chanDepth)

	fmt.Fprintf(w, "\n")
}

// PrintStats prints performance tuning parameters
func PrintStats() {

	WriteStats(os.Stderr)
}

func init() {

	startTime = time.Now()

	nCPU = runtime.NumCPU()
	if nCPU < 1 {
		nCPU = 1
	}

	SetChanDepth(0)
}
