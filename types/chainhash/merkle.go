// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The JaxNetwork developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

// HashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation.  This is a helper
// function used to aid in the generation of a merkle tree.
func HashMerkleBranches(left *Hash, right *Hash) *Hash {
	// Concatenate the left and right nodes.
	var h [HashSize * 2]byte
	copy(h[:HashSize], left[:])
	copy(h[HashSize:], right[:])

	newHash := DoubleHashH(h[:])
	return &newHash
}

// MerkleTreeRoot returns the root of the merkle tree built over the passed
// hashes.  Levels with an odd number of nodes duplicate their last node.
// The root of a single hash is that hash, the root of no hashes is the zero
// hash.
func MerkleTreeRoot(hashes []Hash) Hash {
	if len(hashes) == 0 {
		return Hash{}
	}

	level := make([]Hash, len(hashes))
	copy(level, hashes)

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}

		next := make([]Hash, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, *HashMerkleBranches(&level[i], &level[i+1]))
		}
		level = next
	}

	return level[0]
}

// BuildMerkleTreeProof returns the sibling path from the first hash up to the
// root.  An empty proof is returned for a single hash.
func BuildMerkleTreeProof(hashes []Hash) []Hash {
	proof := make([]Hash, 0)
	if len(hashes) == 0 {
		return proof
	}

	level := make([]Hash, len(hashes))
	copy(level, hashes)

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		proof = append(proof, level[1])

		next := make([]Hash, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, *HashMerkleBranches(&level[i], &level[i+1]))
		}
		level = next
	}

	return proof
}

// ValidateMerkleTreeProof folds the proof produced by BuildMerkleTreeProof
// over the first hash and reports whether the result is the expected root.
func ValidateMerkleTreeProof(first Hash, proof []Hash, root Hash) bool {
	node := first
	for i := range proof {
		node = *HashMerkleBranches(&node, &proof[i])
	}

	return node == root
}
