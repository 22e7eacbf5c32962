package utils

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Stats", func() {
	It("tracks rate and moving average", func() {
		s := NewStats(10)
		s.Update(1, 100, 100*time.Millisecond)
		Expect(s.GenerationsPerSecond).To(BeNumerically("~", 10, 0.001))
		Expect(s.AveragePopulation).To(Equal(100.0))

		s.Update(2, 200, 0)
		Expect(s.AveragePopulation).To(BeNumerically("~", 110, 0.001))
		Expect(s.TotalGenerations).To(Equal(2))
		Expect(s.Population).To(Equal(200))
	})

	It("bounds the population history", func() {
		s := NewStats(3)
		for gen, pop := range []int{1, 2, 3, 4, 5} {
			s.Update(gen, pop, time.Millisecond)
		}
		Expect(s.PopulationHistory()).To(Equal([]float64{3, 4, 5}))
	})
})

var _ = Describe("CycleDetector", func() {
	var d *CycleDetector

	BeforeEach(func() {
		d = NewCycleDetector()
	})

	It("does not flag changing boards", func() {
		for _, h := range []string{"a", "b", "c", "d", "e", "f", "g"} {
			Expect(d.Observe(h)).To(BeFalse())
		}
		Expect(d.StagnantCount()).To(BeZero())
	})

	It("flags a still life", func() {
		Expect(d.Observe("a")).To(BeFalse())
		Expect(d.Observe("a")).To(BeTrue())
		Expect(d.Observe("a")).To(BeTrue())
		Expect(d.StagnantCount()).To(Equal(2))
	})

	It("flags period two and three cycles", func() {
		Expect(d.Observe("a")).To(BeFalse())
		Expect(d.Observe("b")).To(BeFalse())
		Expect(d.Observe("a")).To(BeTrue())

		d.Reset()
		Expect(d.Observe("a")).To(BeFalse())
		Expect(d.Observe("b")).To(BeFalse())
		Expect(d.Observe("c")).To(BeFalse())
		Expect(d.Observe("a")).To(BeTrue())
	})

	It("resets the stagnant streak when the board changes", func() {
		d.Observe("a")
		d.Observe("a")
		Expect(d.StagnantCount()).To(Equal(1))
		d.Observe("z")
		Expect(d.StagnantCount()).To(BeZero())
	})
})
