package engine

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/lodestar-engine/lodestar/internal/board"
	"github.com/lodestar-engine/lodestar/internal/storage"
)

// TTFlag indicates the type of bound stored in the transposition table.
type TTFlag uint8

const (
	TTExact      TTFlag = iota // Exact score
	TTLowerBound               // Failed high (beta cutoff)
	TTUpperBound               // Failed low
)

// TTEntry is the decoded view of a transposition table slot. Scores are
// stored relative to the ply at which they were stored (see
// AdjustScoreToTT/AdjustScoreFromTT); mate scores are re-relativized on
// every probe.
type TTEntry struct {
	BestMove  board.Move // best move found, NoMove if none
	Score     int16      // bound-relative score
	StaticEval int16     // static eval cached at store time, Infinity if absent
	Depth     int8       // draft searched
	Flag      TTFlag     // bound kind
	IsPV      bool       // true if this entry was written by a PV node
	Age       uint8      // search generation, used by the replacement policy
}

// bucket is a pair of lockless-verified 64-bit words holding one packed
// entry. word holds the packed TTEntry fields; keyXorWord holds hash ^ word,
// so a reader can recompute hash from the two words and detect torn writes
// (the case where a concurrent Store interleaved with a Probe) without a
// mutex. A torn read is indistinguishable from a miss, which spec §4.4/§5
// require: correctness never depends on seeing a consistent entry, only
// search quality does.
type bucket struct {
	keyXorWord atomic.Uint64
	word       atomic.Uint64
}

// TranspositionTable is a fixed-size, power-of-two-bucketed hash table
// shared across all search threads. It uses no locks: every Store and
// Probe is a pair of atomic loads/stores verified by XOR, per spec §4.4.
type TranspositionTable struct {
	buckets []bucket
	size    uint64
	mask    uint64
	age     uint8

	hits   atomic.Uint64
	probes atomic.Uint64
}

// NewTranspositionTable creates a transposition table with the given size in MB.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	const bucketSize = 16 // two uint64 words
	numEntries := (uint64(sizeMB) * 1024 * 1024) / bucketSize
	numEntries = roundDownToPowerOf2(numEntries)
	if numEntries == 0 {
		numEntries = 1
	}

	return &TranspositionTable{
		buckets: make([]bucket, numEntries),
		size:    numEntries,
		mask:    numEntries - 1,
	}
}

// roundDownToPowerOf2 rounds n down to the nearest power of 2.
func roundDownToPowerOf2(n uint64) uint64 {
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// packWord encodes everything but the verifier into a single uint64 so it
// can be stored/loaded atomically alongside the XOR-verifier word.
func packWord(e TTEntry) uint64 {
	var isPV uint64
	if e.IsPV {
		isPV = 1
	}
	return uint64(e.BestMove) |
		uint64(uint16(e.Score))<<16 |
		uint64(uint16(e.StaticEval))<<32 |
		uint64(uint8(e.Depth))<<48 |
		uint64(e.Flag)<<56 |
		isPV<<58 |
		uint64(e.Age)<<59
}

func unpackWord(w uint64) TTEntry {
	return TTEntry{
		BestMove:   board.Move(uint16(w)),
		Score:      int16(uint16(w >> 16)),
		StaticEval: int16(uint16(w >> 32)),
		Depth:      int8(uint8(w >> 48)),
		Flag:       TTFlag((w >> 56) & 0x3),
		IsPV:       (w>>58)&0x1 != 0,
		Age:        uint8(w >> 59),
	}
}

// Probe looks up a position in the transposition table. Returns the decoded
// entry and true on a verified hit; a torn or absent entry returns false.
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	tt.probes.Add(1)

	idx := hash & tt.mask
	b := &tt.buckets[idx]

	word := b.word.Load()
	keyXorWord := b.keyXorWord.Load()

	if keyXorWord^word != hash {
		return TTEntry{}, false
	}

	entry := unpackWord(word)
	if entry.Depth <= 0 && entry.Flag == TTExact && entry.BestMove == board.NoMove {
		// Zero-value slot happens to verify (hash==0 edge case); treat as miss.
		return TTEntry{}, false
	}

	tt.hits.Add(1)
	return entry, true
}

// Store saves a position in the transposition table. Each bucket holds one
// entry. An existing entry for the same position from the current search
// generation is kept when the new result is shallower and not exact; in
// every other case, including an entry for a different position, the new
// entry overwrites the old one regardless of the old entry's depth or age.
func (tt *TranspositionTable) Store(hash uint64, depth int, score int, flag TTFlag, bestMove board.Move, staticEval int, isPV bool) {
	idx := hash & tt.mask
	b := &tt.buckets[idx]

	existingWord := b.word.Load()
	existingXor := b.keyXorWord.Load()
	if existingXor^existingWord == hash {
		existing := unpackWord(existingWord)
		if existing.Age == tt.age && depth < int(existing.Depth) && flag != TTExact {
			return
		}
	}

	entry := TTEntry{
		BestMove:   bestMove,
		Score:      int16(score),
		StaticEval: int16(staticEval),
		Depth:      int8(depth),
		Flag:       flag,
		IsPV:       isPV,
		Age:        tt.age,
	}
	word := packWord(entry)

	// Lockless write order: write the verifier word last so a concurrent
	// Probe never observes a consistent-looking but stale entry after only
	// one of the two writes lands; see type bucket's doc comment.
	b.word.Store(word)
	b.keyXorWord.Store(hash ^ word)
}

// RewritePV walks a PV line from a root board, re-storing each successive
// position with its PV move so the line survives a later, unrelated Store
// that might otherwise have evicted an intermediate node. Matches spec
// §4.4's rewrite_pv operation.
func (tt *TranspositionTable) RewritePV(root *board.Position, pv []board.Move, score int) {
	pos := root.Copy()
	for i, m := range pv {
		if m == board.NoMove {
			break
		}
		flag := TTUpperBound
		if i == 0 {
			flag = TTExact
		}
		tt.Store(pos.Hash, 1, score, flag, m, int(Infinity), true)
		pos.MakeMove(m)
	}
}

// PersistEntry writes the current entry at hash, if any, into the
// persistent analysis cache so it survives a process restart.
func (tt *TranspositionTable) PersistEntry(cache *storage.Cache, hash uint64) error {
	entry, ok := tt.Probe(hash)
	if !ok {
		return nil
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], packWord(entry))
	return cache.SetTTEntry(hash, buf[:])
}

// LoadEntry restores a previously persisted entry for hash, if present,
// without disturbing the replacement-age bookkeeping of a live search.
func (tt *TranspositionTable) LoadEntry(cache *storage.Cache, hash uint64) error {
	raw, ok, err := cache.GetTTEntry(hash)
	if err != nil || !ok || len(raw) != 8 {
		return err
	}
	entry := unpackWord(binary.BigEndian.Uint64(raw))
	idx := hash & tt.mask
	word := packWord(entry)
	tt.buckets[idx].word.Store(word)
	tt.buckets[idx].keyXorWord.Store(hash ^ word)
	return nil
}

// NewSearch increments the age counter for a new search.
func (tt *TranspositionTable) NewSearch() {
	tt.age = (tt.age + 1) & 0x1F
}

// Clear clears the transposition table.
func (tt *TranspositionTable) Clear() {
	for i := range tt.buckets {
		tt.buckets[i].word.Store(0)
		tt.buckets[i].keyXorWord.Store(0)
	}
	tt.age = 0
	tt.hits.Store(0)
	tt.probes.Store(0)
}

// HashFull returns the permille (parts per thousand) of the table that is used.
func (tt *TranspositionTable) HashFull() int {
	used := 0
	sampleSize := 1000
	if uint64(sampleSize) > tt.size {
		sampleSize = int(tt.size)
	}

	for i := 0; i < sampleSize; i++ {
		word := tt.buckets[i].word.Load()
		xorWord := tt.buckets[i].keyXorWord.Load()
		entry := unpackWord(word)
		if entry.Depth > 0 && entry.Age == tt.age && xorWord != 0 {
			used++
		}
	}

	return (used * 1000) / sampleSize
}

// HitRate returns the cache hit rate as a percentage.
func (tt *TranspositionTable) HitRate() float64 {
	probes := tt.probes.Load()
	if probes == 0 {
		return 0
	}
	return float64(tt.hits.Load()) / float64(probes) * 100
}

// Size returns the number of buckets in the table.
func (tt *TranspositionTable) Size() uint64 {
	return tt.size
}

// AdjustScoreFromTT converts a ply-relative mate score read from the table
// back into a root-relative score.
func AdjustScoreFromTT(score int, ply int) int {
	if score > MateScore-MaxPly {
		return score - ply
	}
	if score < -MateScore+MaxPly {
		return score + ply
	}
	return score
}

// AdjustScoreToTT converts a root-relative mate score into the ply-relative
// form stored in the table, per spec §3/§9 "Mate-score encoding in TT".
func AdjustScoreToTT(score int, ply int) int {
	if score > MateScore-MaxPly {
		return score + ply
	}
	if score < -MateScore+MaxPly {
		return score - ply
	}
	return score
}
