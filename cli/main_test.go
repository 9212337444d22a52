package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	trp "github.com/jicksta/tideman"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("tideman", func() {

	var stdout, stderr *bytes.Buffer

	BeforeEach(func() {
		stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	})

	execute := func(input string, args ...string) error {
		cmd := newRootCmd(strings.NewReader(input), stdout, stderr)
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	It("prints the winner after prompting for every ballot", func() {
		input := "3\nAlice\nBob\nAlice\nBob\nBob\nAlice\n"
		Expect(execute(input, "Alice", "Bob")).To(Succeed())

		Expect(stdout.String()).To(HavePrefix("Number of voters: Rank 1: Rank 2: \n"))
		Expect(strings.Count(stdout.String(), "Rank 1: ")).To(Equal(3))
		Expect(stdout.String()).To(HaveSuffix("\nAlice\n"))
	})

	It("exits 1 without candidates", func() {
		err := execute("")
		Expect(trp.ExitCode(err)).To(Equal(1))
		Expect(errorMessage(err)).To(Equal(usage))
	})

	It("exits 2 with more than nine candidates", func() {
		err := execute("", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J")
		Expect(trp.ExitCode(err)).To(Equal(2))
	})

	It("accepts more candidates when the capacity is raised", func() {
		input := "1\nJ\nI\nH\nG\nF\nE\nD\nC\nB\nA\n"
		Expect(execute(input, "--max-candidates", "10", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J")).To(Succeed())
		Expect(stdout.String()).To(HaveSuffix("\nJ\n"))
	})

	It("exits 3 on the first invalid vote", func() {
		err := execute("2\nAlice\nAlice\nBob\nAlice\n", "Alice", "Bob")
		Expect(trp.ExitCode(err)).To(Equal(3))
		Expect(err).To(MatchError(trp.ErrDuplicateCandidate))
		Expect(stdout.String()).NotTo(ContainSubstring("Rank 1: Rank 2: Rank 1:"))
	})

	It("asks the voter again under the retry policy", func() {
		input := "1\nAlice\nCarol\nBob\nAlice\n"
		Expect(execute(input, "--on-invalid", "retry", "Alice", "Bob")).To(Succeed())
		Expect(stdout.String()).To(ContainSubstring("Invalid vote. Try again."))
		Expect(stdout.String()).To(HaveSuffix("\nBob\n"))
	})

	It("rejects an unknown policy", func() {
		err := execute("", "--on-invalid", "ignore", "A")
		Expect(err).To(HaveOccurred())
		Expect(trp.ExitCode(err)).To(Equal(1))
	})

	Context("with a ballots file", func() {
		var dir string

		BeforeEach(func() {
			var err error
			dir, err = os.MkdirTemp("", "tideman")
			Expect(err).To(Succeed())
		})

		AfterEach(func() {
			os.RemoveAll(dir)
		})

		write := func(name, content string) string {
			path := filepath.Join(dir, name)
			Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
			return path
		}

		It("counts the file without prompting and writes the report and graph", func() {
			ballots := write("ballots.txt", "one A B C\ntwo A B C\nthree B C A\n")
			dotFile := filepath.Join(dir, "locked.dot")

			Expect(execute("", "--ballots", ballots, "--report", "--dot", dotFile, "A", "B", "C")).To(Succeed())
			Expect(stdout.String()).To(Equal("A\n"))
			Expect(stderr.String()).To(ContainSubstring("Ranked pairs:"))

			dot, err := os.ReadFile(dotFile)
			Expect(err).To(Succeed())
			Expect(string(dot)).To(ContainSubstring("A -> B"))
		})

		It("reads the policy from a config file", func() {
			ballots := write("ballots.txt", "one B A\ntwo A X\n")
			config := write("tideman.yaml", "invalid_ballot: retry\nmax_candidates: 2\n")

			Expect(execute("", "--config", config, "--ballots", ballots, "A", "B")).To(Succeed())
			Expect(stdout.String()).To(Equal("B\n"))
		})
	})

})
