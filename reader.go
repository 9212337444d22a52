package trp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// BallotLine is one voter's ranking as read from input, before validation.
type BallotLine struct {
	VoterID string   `json:"voter_id,omitempty"`
	Names   []string `json:"names"`
}

// ReadBallots reads ballots in the following format, one per line:
//
//	<voterID> <first choice> <second choice> ...
//
// Tokens are separated by whitespace, so candidate names cannot contain spaces.
// Blank lines and lines starting with # are ignored.
func ReadBallots(r io.Reader) ([]BallotLine, error) {
	var ballots []BallotLine
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) < 2 {
			return nil, fmt.Errorf("line %d: expected a voter ID followed by a ranking", lineNo)
		}
		ballots = append(ballots, BallotLine{
			VoterID: tokens[0],
			Names:   tokens[1:],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ballots: %w", err)
	}
	return ballots, nil
}
