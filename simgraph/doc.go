// Package simgraph builds the compatibility graph between critics.
//
// An edge joins two critics whose preference masks differ in exactly one
// bit. Such critics always sit in adjacent cardinality buckets, so the
// builder only compares bucket k against bucket k+1:
//
//	bucket:   0     1        2          3
//	          ·   [0,3] ── [1,4,5] ── [2]
//	side:     0     1        0          1
//
// Side assignment is the bucket parity (k mod 2). Since every edge spans
// buckets k and k+1, no edge can join two vertices of the same parity and
// the graph is bipartite by construction. The matching package relies on
// this 2-colouring: Left() returns the even side, Right() the odd side.
//
// Vertices of a bucket are materialized only when at least one neighbouring
// bucket (k-1 or k+1) is populated; isolated buckets never enter the graph.
//
// # Cost
//
//	Time:   O(Σ |bucket_k|·|bucket_{k+1}|), O(V²/4) when all critics fall into
//	        two adjacent buckets.
//	Memory: O(V + E).
//
// # Errors
//
//	ErrNilIndex         - Build called without a bucket index.
//	ErrIndexMismatch    - the index was built from a different mask slice.
//	ErrInvalidBound     - maxNovels outside [1, bitmask.MaxNovels].
//	ErrMaskExceedsBound - a critic likes more novels than maxNovels allows.
//	ErrNotBipartite     - Verify found an edge breaking the parity colouring;
//	                      returned as *StructureError. This is a defect, not bad input.
package simgraph
