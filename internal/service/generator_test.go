package service_test

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"regexp"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/iByteABit256/MRN-Generator/internal/domain"
	"github.com/iByteABit256/MRN-Generator/internal/metrics"
	"github.com/iByteABit256/MRN-Generator/internal/mrn"
	"github.com/iByteABit256/MRN-Generator/internal/service"
)

const testMaxBatchSize = 100

type GeneratorTestSuite struct {
	suite.Suite
	generator *service.Generator
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

// SetupTest runs before each test
func (suite *GeneratorTestSuite) SetupTest() {
	rng := rand.New(rand.NewPCG(42, 1))
	m := metrics.New(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time {
		return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	}

	suite.generator = service.NewGenerator(rng, m, logger, testMaxBatchSize, clock)
}

func (suite *GeneratorTestSuite) Test_GenerateBatch_ReturnsRequestedCount() {
	t := suite.T()

	mrns, err := suite.generator.GenerateBatch(context.Background(), service.GenerateCommand{
		CountryCode: "DK",
		Count:       20,
	})

	require.NoError(t, err)
	require.Len(t, mrns, 20)

	pattern := regexp.MustCompile(`^24DK[0-9A-Z]{11}[0-9A-Z]{2}[0-9A-Z]$`)
	for _, generated := range mrns {
		assert.Regexp(t, pattern, generated)

		check, err := mrn.CheckCharacter(generated[:mrn.PayloadLength])
		require.NoError(t, err)
		assert.Equal(t, generated[mrn.PayloadLength], check)
	}
}

func (suite *GeneratorTestSuite) Test_GenerateBatch_DefaultsToOne() {
	t := suite.T()

	mrns, err := suite.generator.GenerateBatch(context.Background(), service.GenerateCommand{
		CountryCode: "DK",
	})

	require.NoError(t, err)
	assert.Len(t, mrns, 1)
}

func (suite *GeneratorTestSuite) Test_GenerateBatch_DerivesYearFromClock() {
	t := suite.T()

	mrns, err := suite.generator.GenerateBatch(context.Background(), service.GenerateCommand{
		CountryCode: "DK",
	})

	require.NoError(t, err)
	assert.Equal(t, "24DK", mrns[0][:4])
}

func (suite *GeneratorTestSuite) Test_GenerateBatch_PassesDeclarationOfficeThrough() {
	t := suite.T()

	mrns, err := suite.generator.GenerateBatch(context.Background(), service.GenerateCommand{
		CountryCode:       "DK",
		DeclarationOffice: "004700",
		Count:             10,
	})

	require.NoError(t, err)
	for _, generated := range mrns {
		assert.Equal(t, "004700", generated[4:10])
	}
}

func (suite *GeneratorTestSuite) Test_GenerateBatch_CombinedCategoryTakesPrecedence() {
	t := suite.T()

	mrns, err := suite.generator.GenerateBatch(context.Background(), service.GenerateCommand{
		CountryCode:       "DK",
		ProcedureCategory: "B1",
		CombinedCategory:  "A",
	})

	require.NoError(t, err)
	assert.Equal(t, "BA", mrns[0][15:17])
}

func (suite *GeneratorTestSuite) Test_GenerateBatch_NormalizesLowercaseInput() {
	t := suite.T()

	mrns, err := suite.generator.GenerateBatch(context.Background(), service.GenerateCommand{
		CountryCode: "dk",
	})

	require.NoError(t, err)
	assert.Equal(t, "24DK", mrns[0][:4])
}

func (suite *GeneratorTestSuite) Test_GenerateBatch_RejectsNegativeCount() {
	t := suite.T()

	_, err := suite.generator.GenerateBatch(context.Background(), service.GenerateCommand{
		CountryCode: "DK",
		Count:       -1,
	})

	require.Error(t, err)
	domainErr, ok := domain.IsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidCount, domainErr.Code)
}

func (suite *GeneratorTestSuite) Test_GenerateBatch_RejectsCountAboveLimit() {
	t := suite.T()

	_, err := suite.generator.GenerateBatch(context.Background(), service.GenerateCommand{
		CountryCode: "DK",
		Count:       testMaxBatchSize + 1,
	})

	require.Error(t, err)
	domainErr, ok := domain.IsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidCount, domainErr.Code)
}

func (suite *GeneratorTestSuite) Test_GenerateBatch_RejectsInvalidFields() {
	t := suite.T()

	_, err := suite.generator.GenerateBatch(context.Background(), service.GenerateCommand{
		CountryCode:       "DK",
		DeclarationOffice: "47",
	})

	require.Error(t, err)
	domainErr, ok := domain.IsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidField, domainErr.Code)
}
