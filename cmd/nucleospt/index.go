package main

import (
	"fmt"

	"github.com/kelvinhash/nucleospt"
	"github.com/kelvinhash/nucleospt/fasta"
	"github.com/kelvinhash/nucleospt/spgist"
)

func runIndex(args []string) error {
	fs := newFlagSet("index")
	file := fs.StringP("fasta", "f", "", "input FASTA file (.fa/.fa.gz/.fa.bz2)")
	k := fs.IntP("k", "k", 0, "K-mer window length")
	equal := fs.StringP("equal", "e", "", "after indexing, search for an EQUAL match on this K-mer")
	prefix := fs.StringP("prefix", "p", "", "after indexing, search for a PREFIX match on this K-mer")
	configPath := fs.String("config", "", "YAML config file providing defaults")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *k == 0 {
		*k = cfg.K
	}
	if *file == "" || *k == 0 {
		return fmt.Errorf("index: --fasta and --k are both required")
	}

	rd, closer, err := fasta.Open(*file)
	if err != nil {
		return err
	}
	defer closer.Close()

	records, err := fasta.ReadAll(rd)
	if err != nil {
		return err
	}

	ix := spgist.NewIndex()
	total := 0
	for _, rec := range records {
		kmers, err := bio.Kmers(rec.Seq, *k)
		if err != nil {
			return err
		}
		for _, m := range kmers {
			if err := ix.Insert(m); err != nil {
				return err
			}
			total++
		}
	}
	logger.Info("indexed", "records", len(records), "kmers", total)

	ctx := ctxFromSignals()
	switch {
	case *equal != "":
		m, err := bio.ParseKmer(*equal)
		if err != nil {
			return err
		}
		got, err := ix.Search(ctx, spgist.EqualKey{Kmer: m})
		if err != nil {
			return err
		}
		fmt.Println(len(got), "match(es)")
	case *prefix != "":
		m, err := bio.ParseKmer(*prefix)
		if err != nil {
			return err
		}
		got, err := ix.Search(ctx, spgist.PrefixKey{Kmer: m})
		if err != nil {
			return err
		}
		for _, r := range got {
			fmt.Println(r.String())
		}
	}
	return nil
}
