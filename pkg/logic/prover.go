package logic

// ProverStats reports the bookkeeping a Prover accumulates while
// searching for a proof: how many sub-goals it visited, how many of
// those were short-circuited by the failure cache, and how deep the
// search went. None of this is required by spec.md, but it falls out of
// the depth/cache bookkeeping the prover already does, and gives a
// caller (the CLI's -v flag, in particular) something concrete to report.
type ProverStats struct {
	SequentsExplored int
	CacheHits        int
	MaxDepthReached  int
}

// Prover searches for cut-free proofs of one-sided sequents using bounded,
// focused depth-first search (spec.md §4.4). A Prover is not safe for
// concurrent use: its failure cache is mutated by every call to Prove.
// Create one Prover per caller to parallelize independent queries
// (spec.md §5).
type Prover struct {
	// MaxDepth bounds the recursion depth of the search. Exceeding it
	// returns failure without touching the cache.
	MaxDepth int

	// UseCache enables the failure-memoization described in spec.md §4.4.
	// Defaults to true via NewProver; exposed so callers can disable it
	// for debugging (e.g. to compare search trees with and without
	// memoization).
	UseCache bool

	cache map[string]struct{}
	stats ProverStats
}

// DefaultMaxDepth is the depth budget spec.md §4.4 names as the default.
const DefaultMaxDepth = 100

// NewProver creates a Prover with the given depth budget and an empty
// failure cache. A non-positive maxDepth falls back to DefaultMaxDepth.
func NewProver(maxDepth int) *Prover {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Prover{
		MaxDepth: maxDepth,
		UseCache: true,
		cache:    make(map[string]struct{}),
	}
}

// Stats returns a copy of the statistics from the most recent call to
// Prove or ProveTwoSided.
func (p *Prover) Stats() ProverStats { return p.stats }

// Reset clears the failure cache and statistics, as if the Prover were
// newly constructed with the same MaxDepth/UseCache settings.
func (p *Prover) Reset() {
	p.cache = make(map[string]struct{})
	p.stats = ProverStats{}
}

// ProveTwoSided converts seq to one-sided form (TwoSidedSequent.ToOneSided)
// and proves it.
func (p *Prover) ProveTwoSided(seq TwoSidedSequent) (Proof, bool) {
	return p.Prove(seq.ToOneSided())
}

// Prove searches for a cut-free proof of the one-sided sequent seq,
// bounded by p.MaxDepth. It returns (proof, true) if one was found and
// (Proof{}, false) if the search was exhausted within the depth budget —
// which spec.md §7 is explicit is not an error, only an unsuccessful
// search outcome.
//
// The search is deterministic: rule-application order and split
// enumeration are fixed (spec.md §4.4's "Ordering guarantees"), so two
// calls to Prove on the same sequent, with fresh Provers, return
// structurally identical proofs.
func (p *Prover) Prove(seq Sequent) (Proof, bool) {
	p.stats = ProverStats{}
	return p.proveWithDepth(seq, 0)
}

func (p *Prover) proveWithDepth(seq Sequent, depth int) (Proof, bool) {
	p.stats.SequentsExplored++
	if depth > p.stats.MaxDepthReached {
		p.stats.MaxDepthReached = depth
	}

	if depth > p.MaxDepth {
		return Proof{}, false
	}

	var key string
	if p.UseCache {
		key = p.sequentKey(seq)
		if _, failed := p.cache[key]; failed {
			p.stats.CacheHits++
			return Proof{}, false
		}
	}

	proof, ok := p.proveAsync(seq, depth)

	if !ok && p.UseCache {
		p.cache[key] = struct{}{}
	}

	return proof, ok
}

// sequentKey computes the canonical failure-cache key for seq: the
// multiset of linear formula pretty-prints plus the multiset of
// unrestricted formula pretty-prints (each tagged with a "?" prefix),
// sorted lexicographically and joined, per spec.md §4.4 and §9's note
// that the cache keys on structure, not pointer identity.
func (p *Prover) sequentKey(seq Sequent) string {
	keys := make([]string, 0, len(seq.Linear)+len(seq.Unrestricted))
	for _, f := range seq.Linear {
		keys = append(keys, PrettyUnicode(f))
	}
	for _, f := range seq.Unrestricted {
		keys = append(keys, "?"+PrettyUnicode(f))
	}
	if seq.Focus != nil {
		keys = append(keys, "#"+PrettyUnicode(seq.Focus))
	}
	sortStrings(keys)
	return joinWithNUL(keys)
}
