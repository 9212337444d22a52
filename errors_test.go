package trp

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("ExitCode", func() {

	DescribeTable("maps errors to the tideman exit status",
		func(err error, code int) {
			Expect(ExitCode(err)).To(Equal(code))
		},
		Entry("success", nil, 0),
		Entry("no candidates", ErrNoCandidates, 1),
		Entry("capacity", fmt.Errorf("%w: maximum number of candidates is 9", ErrCapacityExceeded), 2),
		Entry("unknown candidate", &InvalidVoteError{Rank: 0, Name: "X", Err: ErrUnknownCandidate}, 3),
		Entry("duplicate candidate", voterError("v1", &InvalidVoteError{Rank: 1, Name: "A", Err: ErrDuplicateCandidate}), 3),
		Entry("anything else", errors.New("EOF"), 1),
	)

	It("describes the offending rank one-based", func() {
		err := &InvalidVoteError{Rank: 1, Name: "A", Err: ErrDuplicateCandidate}
		Expect(err.Error()).To(Equal(`invalid vote: rank 2 "A": candidate ranked more than once`))
	})

})
