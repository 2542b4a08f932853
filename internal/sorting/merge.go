package sorting

type mergeStage int

const (
	mergeSplit mergeStage = iota
	mergeLeft
	mergeRight
	mergeCombine
	mergeCommit
	mergeReturn
)

type mergeFrame struct {
	lo, hi int
	stage  mergeStage
	merged []int
}

func (f *mergeFrame) mid() int {
	return f.lo + (f.hi-f.lo+1)/2
}

// mergeSort replaces the recursive top-down merge sort with an explicit
// frame stack so it can suspend after every step.
type mergeSort struct {
	arr     buffer
	stack   []mergeFrame
	drained bool
}

func NewMerge(values []int) Generator {
	m := &mergeSort{arr: newBuffer(values)}
	m.stack = append(m.stack, mergeFrame{lo: 0, hi: len(m.arr)})
	return m
}

func (m *mergeSort) push(lo, hi int) {
	m.stack = append(m.stack, mergeFrame{lo: lo, hi: hi})
}

func (m *mergeSort) pop() {
	m.stack = m.stack[:len(m.stack)-1]
}

func (m *mergeSort) Next() (Step, bool) {
	for len(m.stack) > 0 {
		f := &m.stack[len(m.stack)-1]
		span := Span(f.lo, f.hi)

		switch f.stage {
		case mergeSplit:
			if f.hi-f.lo < 2 {
				m.pop()
				continue
			}
			f.stage = mergeLeft
			step := m.arr.snapshot(KindSplit, NoHighlight)
			step.Scope = span
			return step, true

		case mergeLeft:
			f.stage = mergeRight
			m.push(f.lo, f.mid())

		case mergeRight:
			f.stage = mergeCombine
			m.push(f.mid(), f.hi)

		case mergeCombine:
			f.merged = mergeRuns(m.arr[f.lo:f.mid()], m.arr[f.mid():f.hi])
			f.stage = mergeCommit
			step := m.arr.snapshot(KindMerge, NoHighlight)
			step.Scope, step.Secondary = span, span
			return step, true

		case mergeCommit:
			copy(m.arr[f.lo:f.hi], f.merged)
			f.merged = nil
			f.stage = mergeReturn
			step := m.arr.snapshot(KindCommit, NoHighlight)
			step.Scope, step.Secondary = span, span
			step.FastForward = true
			return step, true

		case mergeReturn:
			m.pop()
		}
	}

	if m.drained {
		return Step{}, false
	}
	m.drained = true
	return m.arr.done(), true
}

// mergeRuns merges two sorted runs. On ties the left element goes first.
func mergeRuns(left, right []int) []int {
	out := make([]int, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if right[j] < left[i] {
			out = append(out, right[j])
			j++
		} else {
			out = append(out, left[i])
			i++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}
