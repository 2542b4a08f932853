package player_test

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/sorting"
)

type recorder struct {
	mu     sync.Mutex
	frames []player.Frame
	at     []time.Time
}

func (r *recorder) OnStep(f player.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
	r.at = append(r.at, time.Now())
}

func (r *recorder) Frames() []player.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.frames)
}

func (r *recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

var _ = Describe("Player", func() {
	var rec *recorder

	BeforeEach(func() {
		rec = &recorder{}
	})

	Describe("New", func() {
		It("rejects a non-positive count", func() {
			_, err := player.New(sorting.Bubble, player.WithCount(0))
			Expect(err).To(MatchError(player.ErrInvalidCount))
		})

		It("rejects an unknown algorithm", func() {
			_, err := player.New("bogo")
			Expect(err).To(MatchError(sorting.ErrUnknownAlgorithm))
		})

		It("paces by algorithm unless a delay is given", func() {
			p, err := player.New(sorting.Quick)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Delay()).To(Equal(250 * time.Millisecond))
			Expect(p.State()).To(Equal(player.Idle))

			Expect(p.SetAlgorithm(sorting.Bubble)).To(Succeed())
			Expect(p.Delay()).To(Equal(100 * time.Millisecond))

			p, _ = player.New(sorting.Quick, player.WithDelay(time.Second))
			Expect(p.SetAlgorithm(sorting.Insertion)).To(Succeed())
			Expect(p.Delay()).To(Equal(time.Second))
		})
	})

	DescribeTable("plays every algorithm to a sorted finish",
		func(alg sorting.Algorithm) {
			p, err := player.New(alg,
				player.WithDelay(time.Millisecond),
				player.WithSeed(7),
				player.WithObserver(rec),
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Start(nil)).To(Succeed())

			Eventually(p.Done()).WithTimeout(5 * time.Second).Should(BeClosed())
			Expect(p.State()).To(Equal(player.Finished))

			frames := rec.Frames()
			Expect(frames).NotTo(BeEmpty())
			Expect(frames[0].Seq).To(Equal(0))
			Expect(frames[0].Step.Kind).To(Equal(sorting.KindStart))
			for i, f := range frames {
				Expect(f.Seq).To(Equal(i))
				Expect(f.RunID).To(Equal(frames[0].RunID))
				Expect(f.Step.Array).To(HaveLen(player.DefaultCount))
			}

			last := frames[len(frames)-1]
			Expect(last.Step.Terminal()).To(BeTrue())
			Expect(last.State).To(Equal(player.Finished))
			Expect(slices.IsSorted(last.Step.Array)).To(BeTrue())

			snap := p.Snapshot()
			Expect(snap.Seq).To(Equal(last.Seq))
			Expect(snap.State).To(Equal(player.Finished))
		},
		Entry("bubble", sorting.Bubble),
		Entry("insertion", sorting.Insertion),
		Entry("merge", sorting.Merge),
		Entry("quick", sorting.Quick),
	)

	It("applies the fixed bubble scenario in order", func() {
		p, _ := player.New(sorting.Bubble, player.WithDelay(time.Millisecond), player.WithObserver(rec))
		Expect(p.Start([]int{3, 1, 4, 2})).To(Succeed())
		Eventually(p.Done()).Should(BeClosed())

		frames := rec.Frames()
		Expect(frames).To(HaveLen(11))
		Expect(frames[len(frames)-1].Step.Array).To(Equal([]int{1, 2, 3, 4}))
	})

	It("finishes immediately on an empty array", func() {
		p, _ := player.New(sorting.Merge, player.WithDelay(time.Millisecond), player.WithObserver(rec))
		Expect(p.Start([]int{})).To(Succeed())
		Eventually(p.Done()).Should(BeClosed())

		frames := rec.Frames()
		Expect(frames).To(HaveLen(2))
		Expect(frames[1].Step.Terminal()).To(BeTrue())
	})

	It("skips the delay after a fast-forward step", func() {
		delay := 150 * time.Millisecond
		p, _ := player.New(sorting.Bubble, player.WithDelay(delay), player.WithObserver(rec))
		Expect(p.Start([]int{2, 1})).To(Succeed())
		Eventually(p.Done()).WithTimeout(2 * time.Second).Should(BeClosed())

		rec.mu.Lock()
		defer rec.mu.Unlock()
		// start, compare, swap (fast-forward), done
		Expect(rec.frames).To(HaveLen(4))
		Expect(rec.frames[2].Step.FastForward).To(BeTrue())
		Expect(rec.at[2].Sub(rec.at[1])).To(BeNumerically(">=", delay*2/3))
		Expect(rec.at[3].Sub(rec.at[2])).To(BeNumerically("<", delay/2))
	})

	It("never applies a discarded run's steps after reset", func() {
		p, _ := player.New(sorting.Bubble,
			player.WithDelay(time.Millisecond),
			player.WithSeed(1),
			player.WithObserver(rec),
		)
		Expect(p.Start(nil)).To(Succeed())
		first := p.Snapshot().RunID
		Eventually(rec.Len).Should(BeNumerically(">", 5))

		Expect(p.Reset([]int{4, 3, 2, 1})).To(Succeed())
		cut := rec.Len()
		second := p.Snapshot().RunID
		Expect(second).NotTo(Equal(first))

		Eventually(p.Done()).WithTimeout(5 * time.Second).Should(BeClosed())
		frames := rec.Frames()
		Expect(frames[cut-1].RunID).To(Equal(second))
		Expect(frames[cut-1].Seq).To(Equal(0))
		for _, f := range frames[cut-1:] {
			Expect(f.RunID).To(Equal(second))
		}
		Expect(frames[len(frames)-1].Step.Array).To(Equal([]int{1, 2, 3, 4}))
	})

	It("closes the old run's done channel on reset", func() {
		p, _ := player.New(sorting.Quick, player.WithDelay(time.Hour))
		Expect(p.Start(nil)).To(Succeed())
		old := p.Done()
		Consistently(old, 20*time.Millisecond).ShouldNot(BeClosed())

		Expect(p.Reset(nil)).To(Succeed())
		Expect(old).To(BeClosed())
		Expect(p.Done()).NotTo(BeClosed())
		p.Stop()
		Expect(p.Done()).To(BeClosed())
	})

	It("stops applying steps after Stop", func() {
		p, _ := player.New(sorting.Insertion, player.WithDelay(2*time.Millisecond), player.WithObserver(rec))
		Expect(p.Start(nil)).To(Succeed())
		Eventually(rec.Len).Should(BeNumerically(">", 3))

		p.Stop()
		n := rec.Len()
		Expect(p.State()).To(Equal(player.Idle))
		Consistently(rec.Len, 50*time.Millisecond).Should(Equal(n))
	})

	It("holds position while paused", func() {
		p, _ := player.New(sorting.Merge, player.WithDelay(2*time.Millisecond), player.WithObserver(rec))
		Expect(p.Start(nil)).To(Succeed())
		Eventually(rec.Len).Should(BeNumerically(">", 2))

		p.Pause()
		Expect(p.State()).To(Equal(player.Paused))
		n := rec.Len()
		Consistently(rec.Len, 50*time.Millisecond).Should(Equal(n))

		p.Resume()
		Eventually(p.Done()).WithTimeout(5 * time.Second).Should(BeClosed())
		Expect(p.State()).To(Equal(player.Finished))
	})

	It("gives every run its own id", func() {
		p, _ := player.New(sorting.Bubble, player.WithDelay(time.Hour))
		seen := map[uuid.UUID]bool{}
		for i := 0; i < 5; i++ {
			Expect(p.Reset(nil)).To(Succeed())
			id := p.Snapshot().RunID
			Expect(seen).NotTo(HaveKey(id))
			seen[id] = true
		}
		p.Stop()
	})

	It("returns a snapshot the caller may modify", func() {
		p, _ := player.New(sorting.Bubble, player.WithDelay(time.Hour))
		Expect(p.Start([]int{2, 1, 3})).To(Succeed())
		snap := p.Snapshot()
		snap.Step.Array[0] = 99
		Expect(p.Snapshot().Step.Array).To(Equal([]int{2, 1, 3}))
		p.Stop()
	})
})
