package pacing_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/animfetch/internal/anim"
	"github.com/san-kum/animfetch/internal/fetch"
	"github.com/san-kum/animfetch/internal/pacing"
	"github.com/san-kum/animfetch/internal/snow"
)

var _ = Describe("Loop", func() {
	var (
		clock *fakeClock
		sink  *recordingSink
		src   *countingSource
	)

	BeforeEach(func() {
		clock = newFakeClock()
		sink = &recordingSink{}
		src = &countingSource{}
	})

	Context("when the provider ends on its third frame", func() {
		It("renders exactly two frames and returns nil", func() {
			p := &scriptedProvider{endOn: 3}
			loop, err := pacing.New(p, fetch.Static{"1"}, sink, pacing.Config{
				FPS:     2,
				Refresh: 100 * time.Second,
				Clock:   clock,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(loop.Run(context.Background())).To(Succeed())
			Expect(sink.frames).To(HaveLen(2))
			Expect(p.frames).To(Equal(3))
			Expect(loop.Stats().Renders).To(Equal(2))
			Expect(sink.frames[0]).To(Equal([]string{"f1  1"}))
		})

		It("sleeps one frame period between renders", func() {
			p := &scriptedProvider{endOn: 3}
			loop, err := pacing.New(p, nil, sink, pacing.Config{
				FPS:     2,
				Refresh: 100 * time.Second,
				Clock:   clock,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(loop.Run(context.Background())).To(Succeed())

			Expect(clock.sleeps).To(HaveEach(Equal(500 * time.Millisecond)))
			Expect(clock.sleeps).To(HaveLen(3))
		})
	})

	It("advances the provider once per iteration with the measured dt", func() {
		p := &scriptedProvider{endOn: 3}
		loop, err := pacing.New(p, nil, sink, pacing.Config{FPS: 2, Refresh: time.Minute, Clock: clock})
		Expect(err).NotTo(HaveOccurred())
		Expect(loop.Run(context.Background())).To(Succeed())

		Expect(p.advances).To(Equal([]float64{0, 0.5, 0.5, 0.5}))
		Expect(loop.Stats().Iterations).To(Equal(4))
		Expect(loop.Stats().Elapsed).To(BeNumerically("~", 1.5, 1e-9))
	})

	It("refreshes the text block on its own timer", func() {
		// 0.25 s frames, 1 s refresh, ends at t=2.25.
		p := &scriptedProvider{endOn: 9}
		loop, err := pacing.New(p, src, sink, pacing.Config{FPS: 4, Refresh: time.Second, Clock: clock})
		Expect(err).NotTo(HaveOccurred())
		Expect(loop.Run(context.Background())).To(Succeed())

		Expect(src.calls).To(Equal(3))
		Expect(loop.Stats().Refreshes).To(Equal(2))
		Expect(sink.frames).To(HaveLen(8))
		Expect(sink.frames[0][0]).To(HaveSuffix("v1"))
		Expect(sink.frames[3][0]).To(HaveSuffix("v2"))
		Expect(sink.frames[7][0]).To(HaveSuffix("v3"))
		Expect(loop.Text()).To(Equal(fetch.Block{"v3"}))
	})

	It("moves snow one row per rendered frame when sleeps run late", func() {
		clock.oversleep = time.Millisecond
		s, err := snow.New(10, 5, 30, true, snow.DefaultParams(), rand.New(rand.NewPCG(7, 0)))
		Expect(err).NotTo(HaveOccurred())
		p := &steppedSnow{Snow: s, limit: 300}

		loop, err := pacing.New(p, nil, sink, pacing.Config{FPS: 30, Refresh: 100 * time.Second, Clock: clock})
		Expect(err).NotTo(HaveOccurred())
		Expect(loop.Run(context.Background())).To(Succeed())

		Expect(sink.frames).To(HaveLen(300))
		Expect(p.uneven).To(BeZero())
		Expect(s.Steps()).To(Equal(300))
	})

	It("reads the text block before the first frame", func() {
		p := &scriptedProvider{endOn: 1}
		loop, err := pacing.New(p, src, sink, pacing.Config{FPS: 30, Clock: clock})
		Expect(err).NotTo(HaveOccurred())
		Expect(loop.Run(context.Background())).To(Succeed())
		Expect(src.calls).To(Equal(1))
		Expect(sink.frames).To(BeEmpty())
	})

	It("returns the context error when cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		clock.cancel = cancel
		clock.limit = 5

		p := &scriptedProvider{}
		loop, err := pacing.New(p, nil, sink, pacing.Config{FPS: 10, Clock: clock})
		Expect(err).NotTo(HaveOccurred())

		Expect(loop.Run(ctx)).To(MatchError(context.Canceled))
		Expect(sink.frames).To(HaveLen(4))
	})

	It("stops on sink failures", func() {
		sink.err = errors.New("broken pipe")
		p := &scriptedProvider{}
		loop, err := pacing.New(p, nil, sink, pacing.Config{FPS: 10, Clock: clock})
		Expect(err).NotTo(HaveOccurred())

		err = loop.Run(context.Background())
		Expect(err).To(MatchError(ContainSubstring("broken pipe")))
		Expect(errors.Is(err, sink.err)).To(BeTrue())
	})

	DescribeTable("rejects invalid configuration",
		func(cfg pacing.Config) {
			_, err := pacing.New(&scriptedProvider{}, nil, sink, cfg)
			Expect(err).To(MatchError(anim.ErrInvalidConfig))
		},
		Entry("zero fps", pacing.Config{FPS: 0}),
		Entry("negative fps", pacing.Config{FPS: -1}),
		Entry("fps above the ceiling", pacing.Config{FPS: 1001}),
		Entry("negative refresh", pacing.Config{FPS: 30, Refresh: -time.Second}),
	)
})

var _ = Describe("New", func() {
	It("rejects a missing provider", func() {
		_, err := pacing.New(nil, nil, &recordingSink{}, pacing.Config{FPS: 30})
		Expect(err).To(MatchError(anim.ErrInvalidConfig))
	})

	It("rejects a missing sink", func() {
		_, err := pacing.New(&scriptedProvider{}, nil, nil, pacing.Config{FPS: 30})
		Expect(err).To(MatchError(anim.ErrInvalidConfig))
	})
})

var _ = Describe("RealClock", func() {
	It("returns immediately for non-positive durations", func() {
		Expect(pacing.RealClock().Sleep(context.Background(), 0)).To(Succeed())
	})

	It("wakes on cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(pacing.RealClock().Sleep(ctx, time.Hour)).To(MatchError(context.Canceled))
	})

	It("sleeps for short durations", func() {
		start := time.Now()
		Expect(pacing.RealClock().Sleep(context.Background(), 5*time.Millisecond)).To(Succeed())
		Expect(time.Since(start)).To(BeNumerically(">=", 5*time.Millisecond))
	})
})
