package report

import (
	"bytes"

	trp "github.com/jicksta/tideman"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ElectionReport", func() {

	var er *ElectionReport

	BeforeEach(func() {
		election, _, err := trp.NewElectionBuilder("A", "B", "C").
			Votes(3, "A", "B", "C").
			Votes(2, "B", "C", "A").
			Votes(2, "C", "A", "B").
			Election()
		Expect(err).To(Succeed())
		er = NewElectionReport(election, election.Results())
	})

	It("prints the head-to-head counts", func() {
		var buf bytes.Buffer
		er.PrintPreferencesTable(&buf)

		Expect(buf.String()).To(ContainSubstring("B=A"))
		Expect(buf.String()).To(ContainSubstring("A=A"))
		Expect(buf.String()).To(ContainSubstring("A=5  B=2"))
		Expect(buf.String()).To(ContainSubstring("A=3  B=4"))
	})

	It("marks the cyclical pair", func() {
		var buf bytes.Buffer
		er.PrintRankedPairsTable(&buf)

		Expect(buf.String()).To(ContainSubstring("Cyclical?"))
		Expect(buf.String()).To(MatchRegexp(`\|\s*3\s*\|\s*C\s*\|\s*A\s*\|\s*4\s*\|\s*3\s*\|\s*true\s*\|\s*1\s*\|`))
	})

})
