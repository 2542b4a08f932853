package sorting

type quickStage int

const (
	quickOpen quickStage = iota
	quickScan
	quickCommit
	quickLeft
	quickRight
	quickReturn
)

type quickFrame struct {
	start, end int
	stage      quickStage
	pivot      int
	next       int
	less, rest []int
}

// quickSort partitions around the first element of each frame, collecting
// smaller values and the rest into separate lists before splicing them back.
type quickSort struct {
	arr     buffer
	stack   []quickFrame
	drained bool
}

func NewQuick(values []int) Generator {
	q := &quickSort{arr: newBuffer(values)}
	q.stack = append(q.stack, quickFrame{start: 0, end: len(q.arr)})
	return q
}

func (q *quickSort) Next() (Step, bool) {
	for len(q.stack) > 0 {
		f := &q.stack[len(q.stack)-1]
		span := Span(f.start, f.end)

		switch f.stage {
		case quickOpen:
			if f.end-f.start <= 1 {
				q.stack = q.stack[:len(q.stack)-1]
				continue
			}
			f.pivot = q.arr[f.start]
			f.next = f.start + 1
			f.stage = quickScan
			step := q.arr.snapshot(KindPivot, f.start)
			step.Scope = span
			return step, true

		case quickScan:
			if f.next >= f.end {
				f.stage = quickCommit
				continue
			}
			i := f.next
			f.next++
			if v := q.arr[i]; v < f.pivot {
				f.less = append(f.less, v)
			} else {
				f.rest = append(f.rest, v)
			}
			step := q.arr.snapshot(KindCompare, f.start)
			step.Secondary = Span(i, i+1)
			step.Scope = span
			return step, true

		case quickCommit:
			p := f.start + len(f.less)
			copy(q.arr[f.start:], f.less)
			q.arr[p] = f.pivot
			copy(q.arr[p+1:f.end], f.rest)
			f.stage = quickLeft
			step := q.arr.snapshot(KindCommit, p)
			step.Scope = span
			return step, true

		case quickLeft:
			f.stage = quickRight
			if len(f.less) > 1 {
				q.stack = append(q.stack, quickFrame{start: f.start, end: f.start + len(f.less)})
			}

		case quickRight:
			f.stage = quickReturn
			if len(f.rest) > 1 {
				p := f.start + len(f.less)
				q.stack = append(q.stack, quickFrame{start: p + 1, end: f.end})
			}

		case quickReturn:
			q.stack = q.stack[:len(q.stack)-1]
		}
	}

	if q.drained {
		return Step{}, false
	}
	q.drained = true
	return q.arr.done(), true
}
