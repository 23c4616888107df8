// Package problem reads and writes the plain-text critic/novel format.
//
// Input:
//
//	3 2        ← number of critics, number of novels
//	1          ← critic 1 likes novel 1
//	1 2        ← critic 2 likes novels 1 and 2
//	2          ← critic 3 likes novel 2
//
// Output (WritePairs): one matched pair per line, 1-based critic numbers,
// smaller number first:
//
//	1 2
//
// The package only deals with text; range checks on novel ids are left to
// the bitmask encoder, which knows the critic index to blame.
package problem
