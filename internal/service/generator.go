package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/iByteABit256/MRN-Generator/internal/domain"
	"github.com/iByteABit256/MRN-Generator/internal/metrics"
	"github.com/iByteABit256/MRN-Generator/internal/mrn"
)

// GenerateCommand carries one batch-generation request. Optional fields
// are empty strings when absent; a zero Count means one MRN.
type GenerateCommand struct {
	CountryCode       string
	DeclarationOffice string
	ProcedureCategory string
	CombinedCategory  string
	Count             int
}

// Generator drives the MRN core for batch requests. It owns the single
// pseudorandom generator instance, so all MRNs within one process draw
// from an unbroken sequence of values.
type Generator struct {
	mu           sync.Mutex
	rng          *rand.Rand
	metrics      *metrics.Metrics
	logger       *slog.Logger
	now          func() time.Time
	maxBatchSize int
}

func NewGenerator(
	rng *rand.Rand,
	m *metrics.Metrics,
	logger *slog.Logger,
	maxBatchSize int,
	now func() time.Time,
) *Generator {
	return &Generator{
		rng:          rng,
		metrics:      m,
		logger:       logger,
		now:          now,
		maxBatchSize: maxBatchSize,
	}
}

// GenerateBatch validates the command once, before any randomness is
// consumed, then produces Count MRNs in generation order. Outputs are not
// guaranteed to be distinct.
func (g *Generator) GenerateBatch(ctx context.Context, cmd GenerateCommand) ([]string, error) {
	start := time.Now()

	count := cmd.Count
	if count == 0 {
		count = 1
	}
	if count < 1 {
		g.metrics.IncrementRejected()
		return nil, domain.NewInvalidCountError("must be a positive integer")
	}
	if count > g.maxBatchSize {
		g.metrics.IncrementRejected()
		return nil, domain.NewInvalidCountError("exceeds the batch limit")
	}

	year := g.now().Format("06")

	req, err := domain.NewGenerationRequest(
		cmd.CountryCode,
		cmd.DeclarationOffice,
		cmd.ProcedureCategory,
		cmd.CombinedCategory,
		year,
	)
	if err != nil {
		g.metrics.IncrementRejected()
		return nil, err
	}

	mrns := make([]string, 0, count)

	g.mu.Lock()
	for i := 0; i < count; i++ {
		generated, err := mrn.Generate(req, g.rng)
		if err != nil {
			g.mu.Unlock()
			return nil, err
		}
		mrns = append(mrns, generated)
	}
	g.mu.Unlock()

	g.metrics.AddGenerated(count)
	g.metrics.ObserveBatch(start)

	g.logger.DebugContext(ctx, "generated MRN batch",
		"country_code", req.CountryCode,
		"count", count,
	)

	return mrns, nil
}
