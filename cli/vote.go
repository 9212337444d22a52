package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	trp "github.com/jicksta/tideman"
	"github.com/jicksta/tideman/internal/prompt"
)

// castFromPrompt asks for the number of voters, then for every voter's ranking, one rank at a time.
func castFromPrompt(election *trp.Election, p *prompt.Prompter, out io.Writer) error {
	voters, err := p.ReadInt("Number of voters: ")
	if err != nil {
		return err
	}

	for i := 0; i < voters; i++ {
		for {
			ballot, err := readBallot(election, p)
			if err == nil {
				election.Record(ballot)
				break
			}
			if election.Config().InvalidBallot == trp.PolicyAbort || !trp.IsInvalidVote(err) {
				return err
			}
			slog.Warn("invalid ballot, asking again", "voter", i+1, "error", err)
			fmt.Fprintln(out, "Invalid vote. Try again.")
		}

		fmt.Fprintln(out)
	}

	return nil
}

// readBallot stops at the first invalid rank; nothing is recorded until the ballot is complete.
func readBallot(election *trp.Election, p *prompt.Prompter) (trp.Ballot, error) {
	ballot := election.NewBallot()
	for rank := range ballot {
		name, err := p.ReadLine(fmt.Sprintf("Rank %d: ", rank+1))
		if err != nil {
			return nil, err
		}
		if err := election.Vote(rank, name, ballot); err != nil {
			return nil, err
		}
	}
	return ballot, nil
}

func castFromFile(election *trp.Election, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("could not open ballots file: %w", err)
	}
	defer f.Close()

	ballots, err := trp.ReadBallots(f)
	if err != nil {
		return fmt.Errorf("unable to process %s: %w", filename, err)
	}

	rejected, err := election.CastAll(ballots)
	if err != nil {
		return err
	}
	if rejected > 0 {
		slog.Warn("ballots discarded", "rejected", rejected, "counted", election.Voters())
	}
	return nil
}
