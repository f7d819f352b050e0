package crack

import "iter"

// Candidates yields every string of exactly length characters over a, in
// lexicographic alphabet order: for a–z and length 2 the sequence is
// aa, ab, …, az, ba, …, zz.
//
// Enumeration is an iterative odometer; memory use is O(length) regardless
// of the size of the space.
func Candidates(a Alphabet, length int) iter.Seq[string] {
	return func(yield func(string) bool) {
		enumerate(a, nil, length, yield)
	}
}

// enumerate yields every candidate of the given length that starts with
// prefix. It returns false if yield asked to stop.
func enumerate(a Alphabet, prefix []rune, length int, yield func(string) bool) bool {
	if len(a) == 0 || length < len(prefix) {
		return true
	}
	buf := make([]rune, length)
	copy(buf, prefix)
	free := len(prefix)
	idx := make([]int, length)
	for i := free; i < length; i++ {
		buf[i] = a[0]
	}

	for {
		if !yield(string(buf)) {
			return false
		}
		// Advance the rightmost free position, carrying leftwards.
		i := length - 1
		for ; i >= free; i-- {
			idx[i]++
			if idx[i] < len(a) {
				buf[i] = a[idx[i]]
				break
			}
			idx[i] = 0
			buf[i] = a[0]
		}
		if i < free {
			return true
		}
	}
}
