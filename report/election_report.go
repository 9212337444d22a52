package report

import (
	"fmt"
	"io"
	"strings"

	trp "github.com/jicksta/tideman"
	"github.com/olekukonko/tablewriter"
)

type ElectionReport struct {
	Election *trp.Election
	Results  *trp.Results
}

func NewElectionReport(election *trp.Election, results *trp.Results) *ElectionReport {
	return &ElectionReport{
		Election: election,
		Results:  results,
	}
}

// PrintPreferencesTable writes the head-to-head matrix. A cell "A=3  B=2" in row A, column B
// means 3 voters ranked A over B and 2 ranked B over A.
func (er *ElectionReport) PrintPreferencesTable(writer io.Writer) {
	candidates := er.Election.Candidates()
	prefs := er.Election.Preferences()
	table := newMarkdownTable(writer)

	var headingsWithPrefixes = []string{"A"}
	for _, name := range candidates.Names() {
		headingsWithPrefixes = append(headingsWithPrefixes, "B="+name)
	}
	table.SetHeader(headingsWithPrefixes)

	for i, rowName := range candidates.Names() {
		var cells = []string{"A=" + strings.ToUpper(rowName)}
		for j := range prefs[i] {
			if i == j {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, fmt.Sprintf("A=%d  B=%d", prefs[i][j], prefs[j][i]))
		}
		table.Append(cells)
	}

	table.Render()
}

// PrintRankedPairsTable writes the sorted pairs and whether each one was locked.
func (er *ElectionReport) PrintRankedPairsTable(writer io.Writer) {
	candidates := er.Election.Candidates()
	prefs := er.Election.Preferences()
	table := newMarkdownTable(writer)
	table.SetHeader([]string{"Rank", "Winner", "Loser", "# Winner", "# Loser", "Cyclical?", "Won by"})

	for i, pair := range er.Results.Pairs {
		table.Append([]string{
			fmt.Sprint(i + 1),
			candidates.Name(pair.Winner),
			candidates.Name(pair.Loser),
			fmt.Sprint(prefs[pair.Winner][pair.Loser]),
			fmt.Sprint(prefs[pair.Loser][pair.Winner]),
			fmt.Sprint(er.Results.IsSkipped(i)),
			fmt.Sprint(pair.Margin),
		})
	}

	table.Render()
}

func newMarkdownTable(writer io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(writer)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoFormatHeaders(false)
	return table
}
