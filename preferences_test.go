package trp

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Preferences", func() {

	Describe("#Record", func() {
		It("counts every lower rank, not just the adjacent one", func() {
			p := NewPreferences(3)
			p.Record(Ballot{2, 0, 1})

			Expect(p).To(Equal(Preferences{
				{0, 1, 0},
				{0, 0, 0},
				{1, 1, 0},
			}))
		})

		It("increments exactly n(n-1)/2 cells per ballot", func() {
			for n := 1; n <= 9; n++ {
				p := NewPreferences(n)
				ballot := make(Ballot, n)
				for i := range ballot {
					ballot[i] = n - 1 - i
				}
				p.Record(ballot)

				total := 0
				for i := range p {
					for j := range p[i] {
						Expect(p[i][j]).To(BeNumerically("<=", 1))
						total += p[i][j]
					}
				}
				Expect(total).To(Equal(n*(n-1)/2), "n=%d", n)
			}
		})

		It("accumulates across ballots", func() {
			p := NewPreferences(2)
			p.Record(Ballot{0, 1})
			p.Record(Ballot{0, 1})
			p.Record(Ballot{1, 0})

			Expect(p[0][1]).To(Equal(2))
			Expect(p[1][0]).To(Equal(1))
			Expect(p.Margin(0, 1)).To(Equal(1))
			Expect(p.Margin(1, 0)).To(Equal(-1))
		})
	})

})
