// Package bitmask encodes a critic's set of liked novels as a single
// fixed-width integer and answers the one question the matcher keeps asking:
// do two preference sets differ by exactly one novel?
//
// Representation:
//
//	novel ids   {1, 3, 4}
//	bit index    0  2  3
//	Mask        0b1101 = 13
//
// Bit (id-1) is set for every liked novel id. With MaxNovels = 32 the whole
// set fits in a uint32, so a preference list of k ids shrinks to 4 bytes and
// set comparison becomes a handful of machine-word operations.
//
// # Similarity
//
// Two masks are similar when they differ in exactly one bit, i.e. one novel
// was added or removed:
//
//	IsSimilar(0b1101, 0b1001) == true   // {1,3,4} vs {1,4}
//	IsSimilar(0b0011, 0b0101) == false  // {1,2}   vs {1,3}: two bits differ
//	IsSimilar(m, m)           == false  // identical sets never pair
//
// # Errors
//
//	ErrInvalidBound    - maxNovels outside [1, MaxNovels].
//	ErrNovelOutOfRange - a novel id outside [1, maxNovels]; returned as *RangeError.
//
// Complexity:
//
//	Encode    O(k) for k ids.
//	EncodeAll O(Σk) over all critics.
//	IsSimilar O(1).
package bitmask
