/*
Package plot implements the plot store: the set of committed replicas
of an input, one file per tree, named by the tree's root.

Plotting

Plot reads its input in blocks of Params.BlockSize() bytes. Every full
block becomes a tree, is encoded, and is committed under its root unless
a plot with the same root already exists, in which case the block is
counted as a conflict and dropped. A trailing partial block is ignored.

Proving

GenerateProof routes a challenge to the committed root nearest to it
and cuts the challenge's path out of that plot. Verify checks such a
proof without access to the store.

The store assumes a single writer. Proof generation may run
concurrently with itself.
*/
package plot
