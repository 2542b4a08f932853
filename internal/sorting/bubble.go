package sorting

type bubblePhase int

const (
	bubbleCompare bubblePhase = iota
	bubbleDecide
	bubbleFinish
	bubbleExhausted
)

type bubbleSort struct {
	arr   buffer
	i, j  int
	phase bubblePhase
}

func NewBubble(values []int) Generator {
	return &bubbleSort{arr: newBuffer(values)}
}

func (b *bubbleSort) Next() (Step, bool) {
	n := len(b.arr)
	for {
		switch b.phase {
		case bubbleCompare:
			if b.i >= n {
				b.phase = bubbleFinish
				continue
			}
			if b.j >= n-b.i-1 {
				b.i++
				b.j = 0
				continue
			}
			b.phase = bubbleDecide
			return b.arr.snapshot(KindCompare, b.j), true

		case bubbleDecide:
			j := b.j
			b.j++
			b.phase = bubbleCompare
			if b.arr[j] > b.arr[j+1] {
				b.arr[j], b.arr[j+1] = b.arr[j+1], b.arr[j]
				step := b.arr.snapshot(KindSwap, j+1)
				step.FastForward = true
				return step, true
			}

		case bubbleFinish:
			b.phase = bubbleExhausted
			return b.arr.done(), true

		default:
			return Step{}, false
		}
	}
}
