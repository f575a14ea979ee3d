package symbol

// MerkleRoot folds hashes pairwise with SHA3-256, duplicating the last hash of odd levels.
func MerkleRoot(hashes []Hash256) Hash256 {
	if len(hashes) == 0 {
		return Hash256{}
	}
	level := make([]Hash256, len(hashes))
	copy(level, hashes)
	for len(level) > 1 {
		next := make([]Hash256, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			right := level[i]
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, Sha3(level[i][:], right[:]))
		}
		level = next
	}
	return level[0]
}

// HashEmbeddedTransactions computes the order-sensitive transactions hash of an aggregate.
func HashEmbeddedTransactions(transactions []*EmbeddedTransaction) Hash256 {
	hashes := make([]Hash256, 0, len(transactions))
	for _, tx := range transactions {
		hashes = append(hashes, Sha3(tx.Serialize()))
	}
	return MerkleRoot(hashes)
}
