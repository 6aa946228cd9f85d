package semtok

import "github.com/csslsp/csslsp/internal/cssdoc"

// Full computes the full semantic token response for doc and caches it,
// returning the encoded data plus the result id to hand the client (spec
// §4.11's get_semantic_tokens_full).
func Full(doc *cssdoc.Document, cache *Cache) ([]uint32, string) {
	data := Encode(doc, Tokenize(doc.Root()))
	id := cache.Store(data)
	return data, id
}

// Delta computes a semanticTokens/full/delta response: if prevResultID is
// still cached, returns the edit list turning it into doc's current
// tokens; otherwise returns the full token data with ok=false, signaling
// the caller to respond with a full result instead (spec §4.11 "Unknown
// prior id -> return full tokens with a new id").
func Delta(doc *cssdoc.Document, cache *Cache, prevResultID string) (edits []Edit, fullData []uint32, newResultID string, ok bool) {
	oldData, found := cache.Take(prevResultID)

	data := Encode(doc, Tokenize(doc.Root()))
	newResultID = cache.Store(data)

	if !found {
		return nil, data, newResultID, false
	}
	return Diff(oldData, data), data, newResultID, true
}
