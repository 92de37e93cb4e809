/*
Package merkletree implements the complete Merkle trees that back every
plot, together with the encoding that turns a tree into a unique replica
and the partial proofs that show a replica is stored.

Tree

A tree is built over Params.Leaves digests with a branching factor of
Params.Fanout. All nodes live in one flat sequence: the leaves, then
each internal level from the bottom up, the root last. A tree is written
to disk as an 8-byte big-endian block offset followed by every node.

Encoding

Before a tree is stored, every node except the root is XORed with
H(root || marker(i)), where marker(i) is the zero digest with its last
byte set to the node's position. A replica therefore cannot be produced
without first computing the root over the raw data.

Proofs

A challenge selects a leaf (its last byte modulo Leaves). PathIndexes
lists the nodes needed to climb from that leaf to the root; the proof is
the encoded digests found at those positions plus the root. Verify
removes the encoding with the claimed root, hashes the path back up and
compares the result with the claimed root.
*/
package merkletree
