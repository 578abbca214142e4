// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package spgist

import (
	"github.com/kelvinhash/nucleospt"
)

// InnerConsistentIn describes one internal node during a search
// descent: the reconstructed value accumulated from the root (nil at
// the root itself), the node's optional prefix, its child labels, and
// the scan keys every surviving child must satisfy.
type InnerConsistentIn struct {
	ReconstructedValue *bio.Kmer // nil at the root; K must equal Level otherwise
	Level              int
	HasPrefix          bool
	PrefixDatum        bio.Kmer
	NodeLabels         []int16
	ScanKeys           []ScanKey
}

// KeptChild is one child that survived inner-consistent pruning.
type KeptChild struct {
	NodeIndex          int
	LevelAdd           int
	ReconstructedValue bio.Kmer
}

// InnerConsistentOut lists the children still worth descending into.
type InnerConsistentOut struct {
	Kept []KeptChild
}

// buildReconstructed appends a node's prefix (if any) to the value
// reconstructed so far, per §4.D.4's "rebuild rv".
func buildReconstructed(prior *bio.Kmer, hasPrefix bool, prefix bio.Kmer) bio.Kmer {
	var base bio.Kmer
	if prior != nil {
		base = *prior
	}
	if !hasPrefix {
		return base
	}
	return bio.Kmer{
		Value: (base.Value << (2 * uint(prefix.K))) | prefix.Value,
		K:     base.K + prefix.K,
	}
}

// InnerConsistent implements §4.D.4.
func InnerConsistent(in InnerConsistentIn) (InnerConsistentOut, error) {
	rv := buildReconstructed(in.ReconstructedValue, in.HasPrefix, in.PrefixDatum)

	var out InnerConsistentOut
	for i, label := range in.NodeLabels {
		candidate := rv
		if label >= 0 {
			candidate = bio.Kmer{Value: (rv.Value << 2) | uint64(label), K: rv.K + 1}
		}

		if !keysAcceptInner(in.ScanKeys, candidate) {
			continue
		}

		out.Kept = append(out.Kept, KeptChild{
			NodeIndex:          i,
			LevelAdd:           int(candidate.K) - in.Level,
			ReconstructedValue: candidate,
		})
	}
	return out, nil
}

func keysAcceptInner(keys []ScanKey, candidate bio.Kmer) bool {
	for _, key := range keys {
		n := candidate.K
		switch k := key.(type) {
		case EqualKey:
			if n > k.Kmer.K {
				n = k.Kmer.K
			}
			if bio.CompareFirstN(k.Kmer, candidate, n) != 0 {
				return false
			}
			if k.Kmer.K < candidate.K {
				return false
			}
		case PrefixKey:
			if n > k.Kmer.K {
				n = k.Kmer.K
			}
			if bio.CompareFirstN(k.Kmer, candidate, n) != 0 {
				return false
			}
		case QKmerMatchKey:
			if n > k.QKmer.K {
				n = k.QKmer.K
			}
			if !bio.ContainsPrefix(k.QKmer, candidate, n) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// LeafConsistentIn describes one candidate leaf tuple reached during a
// search descent.
type LeafConsistentIn struct {
	LeafDatum          bio.Kmer
	ReconstructedValue bio.Kmer
	ScanKeys           []ScanKey
}

// LeafConsistentOut is the verdict on one leaf tuple. Recheck is
// always false: the full value is always available, so there is never
// an approximate accept that needs rechecking by the host.
type LeafConsistentOut struct {
	Accepted bool
	Recheck  bool
	Value    bio.Kmer
}

// LeafConsistent implements §4.D.5.
func LeafConsistent(in LeafConsistentIn) (LeafConsistentOut, error) {
	rv := in.ReconstructedValue
	full := bio.Kmer{
		Value: (rv.Value << (2 * uint(in.LeafDatum.K))) | in.LeafDatum.Value,
		K:     rv.K + in.LeafDatum.K,
	}

	for _, key := range in.ScanKeys {
		switch k := key.(type) {
		case EqualKey:
			if full.K != k.Kmer.K || full.Value != k.Kmer.Value {
				return LeafConsistentOut{Value: full}, nil
			}
		case PrefixKey:
			if !bio.StartsWith(full, k.Kmer) {
				return LeafConsistentOut{Value: full}, nil
			}
		case QKmerMatchKey:
			if !bio.ContainsEqualLength(k.QKmer, full) {
				return LeafConsistentOut{Value: full}, nil
			}
		default:
			return LeafConsistentOut{}, bio.ErrUnknownStrategy
		}
	}

	return LeafConsistentOut{Accepted: true, Value: full}, nil
}
