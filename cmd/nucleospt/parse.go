package main

import (
	"fmt"

	"github.com/kelvinhash/nucleospt"
)

func runParse(args []string) error {
	fs := newFlagSet("parse")
	kmerStr := fs.StringP("kmer", "k", "", "K-mer string to parse (1-32 symbols of A/C/G/T)")
	qkmerStr := fs.StringP("qkmer", "q", "", "QK-mer string to parse instead (IUPAC ambiguity codes)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *qkmerStr != "":
		q, err := bio.ParseQKmer(*qkmerStr)
		if err != nil {
			return err
		}
		fmt.Printf("ac=%#016x gt=%#016x k=%d\n", q.Ac, q.Gt, q.K)
	case *kmerStr != "":
		m, err := bio.ParseKmer(*kmerStr)
		if err != nil {
			return err
		}
		fmt.Printf("value=%#016x k=%d hash=%#08x\n", m.Value, m.K, bio.Hash(m))
	default:
		return fmt.Errorf("parse: one of --kmer or --qkmer is required")
	}
	return nil
}
