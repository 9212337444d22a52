// Package rest counts elections submitted over HTTP. Nothing is stored between requests.
package rest

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	trp "github.com/jicksta/tideman"
)

// ElectionRequest is a complete election: the candidates and every voter's ranking.
type ElectionRequest struct {
	Candidates []string   `json:"candidates"`
	Ballots    [][]string `json:"ballots"`
}

type PairResult struct {
	Winner string `json:"winner"`
	Loser  string `json:"loser"`
	Margin int    `json:"margin"`
	Locked bool   `json:"locked"`
}

type ElectionResponse struct {
	Voters   int          `json:"voters"`
	Rejected int          `json:"rejected"`
	Winners  []string     `json:"winners"`
	Ranking  []string     `json:"ranking"`
	Pairs    []PairResult `json:"pairs"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// NewRouter returns the HTTP handler. Every election is counted under cfg.
func NewRouter(cfg trp.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/elections", func(c *gin.Context) {
		var req ElectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: 1})
			return
		}

		resp, err := countElection(cfg, req)
		if err != nil {
			slog.Info("election rejected", "error", err)
			c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Code: trp.ExitCode(err)})
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	return r
}

func countElection(cfg trp.Config, req ElectionRequest) (*ElectionResponse, error) {
	builder := trp.NewElectionBuilder(req.Candidates...).WithConfig(cfg)
	for _, ballot := range req.Ballots {
		builder.Vote(ballot...)
	}

	election, rejected, err := builder.Election()
	if err != nil {
		return nil, err
	}

	results := election.Results()
	ranking, err := results.Ranking()
	if err != nil {
		return nil, err
	}

	candidates := election.Candidates()
	pairs := make([]PairResult, 0, len(results.Pairs))
	for i, pair := range results.Pairs {
		pairs = append(pairs, PairResult{
			Winner: candidates.Name(pair.Winner),
			Loser:  candidates.Name(pair.Loser),
			Margin: pair.Margin,
			Locked: !results.IsSkipped(i),
		})
	}

	return &ElectionResponse{
		Voters:   election.Voters(),
		Rejected: rejected,
		Winners:  results.WinnerNames(),
		Ranking:  ranking,
		Pairs:    pairs,
	}, nil
}
