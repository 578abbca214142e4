// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Command nucleospt is a small CLI around the packed DNA/K-mer/QK-mer
// codec, the SPT index, FASTA ingestion, de Bruijn assembly, and motif
// search: parse, render, stream, index, assemble, motif.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, args := os.Args[1], os.Args[2:]

	var err error
	switch cmd {
	case "parse":
		err = runParse(args)
	case "render":
		err = runRender(args)
	case "stream":
		err = runStream(args)
	case "index":
		err = runIndex(args)
	case "assemble":
		err = runAssemble(args)
	case "motif":
		err = runMotif(args)
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "nucleospt: unknown subcommand %q\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `nucleospt: packed DNA/K-mer/QK-mer codec and SPT index CLI

Usage:
  nucleospt parse -k <kmer>        validate a K-mer string and print its packed hex value
  nucleospt render -v <hex> -k <k> render a packed hex value back to its K-mer string
  nucleospt stream -f <fasta> -k N emit the K-mer stream for every record in a FASTA file
  nucleospt index -f <fasta> -k N  build an SPT index over a FASTA file's K-mers, report stats
  nucleospt assemble -f <fasta> -k N   assemble contigs from a FASTA file's K-mer stream
  nucleospt motif -f <fasta> -m <motif> [-d N]   find exact or approximate motif occurrences`)
}

// ctxFromSignals returns a context that is never canceled; the
// subcommands are all
// short-lived CLI invocations, so a background context cancellable
// only by process exit is sufficient -- there is no interactive
// cancellation surface on a CLI.
func ctxFromSignals() context.Context {
	return context.Background()
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ExitOnError)
	return fs
}
