package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wizenheimer/searchcore"
)

//go:embed testdata/docs.yaml
var defaultFixture []byte

type fixtureDoc struct {
	ID      int    `yaml:"id"`
	Text    string `yaml:"text"`
	Status  string `yaml:"status"`
	Ratings []int  `yaml:"ratings"`
}

type fixture struct {
	StopWords string       `yaml:"stop_words"`
	Documents []fixtureDoc `yaml:"documents"`
}

// loadServer builds a Server from the --seed-file fixture, or the
// embedded default corpus when --seed-file is unset.
func loadServer() (*search.Server, error) {
	raw := defaultFixture
	if seedFile != "" {
		b, err := os.ReadFile(seedFile)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}

	var f fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	srv, err := search.NewServerFromText(f.StopWords)
	if err != nil {
		return nil, fmt.Errorf("build server: %w", err)
	}
	for _, d := range f.Documents {
		status := search.Status(d.Status)
		if status == "" {
			status = search.Actual
		}
		if err := srv.Add(d.ID, d.Text, status, d.Ratings); err != nil {
			return nil, fmt.Errorf("seed document %d: %w", d.ID, err)
		}
	}
	return srv, nil
}
