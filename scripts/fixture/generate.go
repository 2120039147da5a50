package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"morehop/internal/dataset"
)

var (
	fixtureNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	answerTypes      = []string{"number", "person", "date", "place", "yes/no"}
	reasoningTypes   = []string{"Arithmetic", "Symbolic", "Commonsense", "Commonsense, Arithmetic", "Commonsense, Symbolic"}
)

// generateRecords builds a deterministic synthetic dataset. Roughly one record
// in ten omits its hop count and one in twenty its reasoning type.
func generateRecords(cfg fixtureConfig) []dataset.Record {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	pool := max(cfg.Paragraphs, 1)
	records := make([]dataset.Record, 0, cfg.Records)
	for i := 0; i < cfg.Records; i++ {
		hops := 1 + rng.IntN(4)
		answerType := answerTypes[rng.IntN(len(answerTypes))]
		reasoningType := reasoningTypes[rng.IntN(len(reasoningTypes))]
		record := dataset.Record{
			ID:         deterministicID("record", i),
			Question:   fmt.Sprintf("Synthetic question %d?", i),
			Answer:     fmt.Sprintf("answer-%d", i),
			AnswerType: &answerType,
		}
		if rng.IntN(10) != 0 {
			record.NoOfHops = &hops
		}
		if rng.IntN(20) != 0 {
			record.ReasoningType = &reasoningType
		}
		for hop := 0; hop < hops; hop++ {
			title := paragraphTitle(rng.IntN(pool))
			record.Context = append(record.Context, dataset.ContextParagraph{
				Title:     title,
				Sentences: []string{fmt.Sprintf("%s is paragraph text.", title)},
			})
			record.Decomposition = append(record.Decomposition, dataset.SubQuestion{
				SubID:        fmt.Sprintf("%d", hop+1),
				Question:     fmt.Sprintf("Step %d of question %d?", hop+1, i),
				Answer:       fmt.Sprintf("step-%d", hop+1),
				SupportTitle: title,
			})
		}
		records = append(records, record)
	}
	return records
}

func paragraphTitle(index int) string {
	return fmt.Sprintf("Paragraph %04d", index)
}

func deterministicID(prefix string, index int) string {
	return uuid.NewSHA1(fixtureNamespace, []byte(fmt.Sprintf("%s-%d", prefix, index))).String()
}
