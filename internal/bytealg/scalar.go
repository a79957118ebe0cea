package bytealg

// The scalar kernels define the expected results of every other path.

func indexScalar[T Unit](s []T, c T) int {
	for i, v := range s {
		if v == c {
			return i
		}
	}
	return -1
}

func lastIndexScalar[T Unit](s []T, c T) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func countScalar[T Unit](s []T, c T, limit int) int {
	if limit == 0 {
		return 0
	}
	n := 0
	for _, v := range s {
		if v == c {
			n++
			if n == limit {
				break
			}
		}
	}
	return n
}
