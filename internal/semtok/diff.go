package semtok

// Edit is one LSP SemanticTokensEdit: replace Data[Start:Start+DeleteCount]
// in the client's previously-cached flat array with Data.
type Edit struct {
	Start       uint32
	DeleteCount uint32
	Data        []uint32
}

// Diff computes the edit list turning old's encoded 5-tuples into new's
// (spec §4.11's delta protocol). It diffs whole 5-tuples (one semantic
// token each) rather than individual uint32s, so an edit never splits a
// token's own fields across a boundary.
//
// Simplification, documented per the process rules (the original's
// delta.rs was pruned from the retrieval pack — see semtok.go's doc
// comment): rather than a full LIS-style diff that can thread together
// multiple disjoint matching runs, this computes the longest matching
// prefix and the longest matching suffix of tokens and emits the single
// edit spanning what's left in between. This is the same strategy
// rust-analyzer's own semantic-token diffing falls back to for the common
// case (an edit confined to one contiguous region of the document), and it
// satisfies the protocol contract (the edit list, applied in order,
// reconstructs `new` exactly) even though it doesn't find a minimal edit
// for a pathological scattered-change input.
func Diff(old, new_ []uint32) []Edit {
	oldTok := groupTokens(old)
	newTok := groupTokens(new_)

	prefix := 0
	for prefix < len(oldTok) && prefix < len(newTok) && tokenEqual(oldTok[prefix], newTok[prefix]) {
		prefix++
	}

	oldSuffix, newSuffix := len(oldTok), len(newTok)
	for oldSuffix > prefix && newSuffix > prefix && tokenEqual(oldTok[oldSuffix-1], newTok[newSuffix-1]) {
		oldSuffix--
		newSuffix--
	}

	if prefix == oldSuffix && prefix == newSuffix {
		return nil // identical
	}

	var data []uint32
	for _, t := range newTok[prefix:newSuffix] {
		data = append(data, t[:]...)
	}
	return []Edit{{
		Start:       uint32(prefix * 5),
		DeleteCount: uint32((oldSuffix - prefix) * 5),
		Data:        data,
	}}
}

func groupTokens(flat []uint32) [][5]uint32 {
	out := make([][5]uint32, 0, len(flat)/5)
	for i := 0; i+5 <= len(flat); i += 5 {
		out = append(out, [5]uint32{flat[i], flat[i+1], flat[i+2], flat[i+3], flat[i+4]})
	}
	return out
}

func tokenEqual(a, b [5]uint32) bool { return a == b }
