package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kelvinhash/nucleospt"
)

func runRender(args []string) error {
	fs := newFlagSet("render")
	value := fs.StringP("value", "v", "", "packed K-mer value, as a 0x-prefixed hex literal")
	k := fs.IntP("k", "k", 0, "K-mer length (1-32)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *value == "" || *k == 0 {
		return fmt.Errorf("render: --value and --k are both required")
	}

	v, err := strconv.ParseUint(strings.TrimPrefix(*value, "0x"), 16, 64)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if *k < 1 || *k > bio.MaxK {
		return fmt.Errorf("render: k=%d out of range [1,%d]", *k, bio.MaxK)
	}
	if *k < 32 {
		v &= uint64(1)<<(2*uint(*k)) - 1
	}
	m := bio.Kmer{Value: v, K: uint8(*k)}
	fmt.Println(m.String())
	return nil
}
