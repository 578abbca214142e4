package main

import (
	"fmt"

	"github.com/kelvinhash/nucleospt"
	"github.com/kelvinhash/nucleospt/fasta"
)

func runMotif(args []string) error {
	fs := newFlagSet("motif")
	file := fs.StringP("fasta", "f", "", "input FASTA file (.fa/.fa.gz/.fa.bz2)")
	motifStr := fs.StringP("motif", "m", "", "motif K-mer to search for")
	maxMismatches := fs.IntP("max-mismatches", "d", 0, "maximum Hamming distance (0 = exact match only)")
	configPath := fs.String("config", "", "YAML config file providing defaults")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if !fs.Changed("max-mismatches") {
		*maxMismatches = cfg.MaxMismatches
	}
	if *file == "" || *motifStr == "" {
		return fmt.Errorf("motif: --fasta and --motif are both required")
	}

	motif, err := bio.ParseKmer(*motifStr)
	if err != nil {
		return err
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

	for _, rec := range records {
		var positions []int
		if *maxMismatches == 0 {
			positions, err = bio.FindAll(rec.Seq, motif)
		} else {
			positions, err = bio.FindAllWithin(rec.Seq, motif, *maxMismatches)
		}
		if err != nil {
			return err
		}
		logger.Info("searched", "record", rec.ID(), "hits", len(positions))
		for _, p := range positions {
			fmt.Printf("%s\t%d\n", rec.ID(), p)
		}
	}
	return nil
}
