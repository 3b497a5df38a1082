package core

// Chunks splits data into at most workers contiguous sub-slices of size
// ceil(len/workers) each (the last may be shorter), never shorter than
// minLen except for the final remainder. The chunks are disjoint views
// into data; their concatenation in order reproduces it, and none is
// empty unless data is.
func Chunks[T any](data []T, workers, minLen int) [][]T {
	n := len(data)
	if n == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}

	size := (n + workers - 1) / workers
	if size < minLen {
		size = minLen
	}

	chunks := make([][]T, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		chunks = append(chunks, data[lo:hi:hi])
	}
	return chunks
}
