package sorting

// insertionSort walks the whole sorted prefix for every i, swapping adjacent
// pairs that are out of order. It never stops early.
type insertionSort struct {
	arr      buffer
	i, j     int
	deciding bool
	finished bool
	drained  bool
}

func NewInsertion(values []int) Generator {
	return &insertionSort{arr: newBuffer(values), i: 1, j: 0}
}

func (s *insertionSort) Next() (Step, bool) {
	if s.drained {
		return Step{}, false
	}
	n := len(s.arr)
	for !s.finished {
		if s.deciding {
			s.deciding = false
			j := s.j
			s.j--
			if s.arr[j+1] < s.arr[j] {
				s.arr[j], s.arr[j+1] = s.arr[j+1], s.arr[j]
			}
			continue
		}
		if s.i >= n {
			s.finished = true
			break
		}
		if s.j < 0 {
			s.i++
			s.j = s.i - 1
			continue
		}
		s.deciding = true
		return s.arr.snapshot(KindCompare, s.j+1), true
	}
	s.drained = true
	return s.arr.done(), true
}
