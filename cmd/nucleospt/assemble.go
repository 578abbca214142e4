package main

import (
	"fmt"

	"github.com/kelvinhash/nucleospt"
	"github.com/kelvinhash/nucleospt/assembly"
	"github.com/kelvinhash/nucleospt/fasta"
)

func runAssemble(args []string) error {
	fs := newFlagSet("assemble")
	file := fs.StringP("fasta", "f", "", "input FASTA file (.fa/.fa.gz/.fa.bz2)")
	k := fs.IntP("k", "k", 0, "K-mer window length")
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
		return fmt.Errorf("assemble: --fasta and --k are both required")
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

	var kmers []bio.Kmer
	for _, rec := range records {
		ms, err := bio.Kmers(rec.Seq, *k)
		if err != nil {
			return err
		}
		kmers = append(kmers, ms...)
	}

	contigs, err := assembly.Contigs(kmers)
	if err != nil {
		return err
	}
	logger.Info("assembled", "records", len(records), "kmers", len(kmers), "contigs", len(contigs))
	for _, c := range contigs {
		fmt.Println(c.String())
	}
	return nil
}
