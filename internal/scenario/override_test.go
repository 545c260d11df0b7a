package scenario

import (
	"errors"
	"testing"
	"time"

	"github.com/fpgo/finance-projector/internal/domain"
	"github.com/fpgo/finance-projector/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func centsPtr(c money.Cents) *money.Cents { return &c }

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func baseSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		AsOf: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Assets: []domain.Asset{
			{
				Name:         "brokerage",
				BalanceCents: 5000000,
				Growth: domain.GrowthAssumption{
					AnnualRatePercent:        decimal.NewFromInt(7),
					MonthlyContributionCents: 50000,
				},
			},
		},
		Liabilities: []domain.Liability{
			{
				Name:                "car loan",
				BalanceCents:        2000000,
				AnnualRatePercent:   decimal.NewFromInt(6),
				MonthlyPaymentCents: 40000,
			},
		},
		CashFlows: []domain.CashFlow{
			{Name: "salary", MonthlyAmountCents: 600000},
		},
	}
}

func TestAssetOverrideApply(t *testing.T) {
	base := baseSnapshot()
	ov := &AssetOverride{
		AssetName:                "brokerage",
		BalanceCents:             centsPtr(7500000),
		MonthlyContributionCents: centsPtr(100000),
	}

	next, err := Apply(base, []Override{ov})
	require.NoError(t, err)

	assert.Equal(t, money.Cents(7500000), next.Assets[0].BalanceCents)
	assert.Equal(t, money.Cents(100000), next.Assets[0].Growth.MonthlyContributionCents)
	// Untouched field survives.
	assert.True(t, next.Assets[0].Growth.AnnualRatePercent.Equal(decimal.NewFromInt(7)))
	// Base is never mutated.
	assert.Equal(t, money.Cents(5000000), base.Assets[0].BalanceCents)
	assert.Equal(t, money.Cents(50000), base.Assets[0].Growth.MonthlyContributionCents)
}

func TestAssetOverrideGrowthRate(t *testing.T) {
	next, err := Apply(baseSnapshot(), []Override{
		&AssetOverride{AssetName: "brokerage", AnnualRatePercent: decimalPtr(decimal.NewFromInt(10))},
	})
	require.NoError(t, err)
	assert.True(t, next.Assets[0].Growth.AnnualRatePercent.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, money.Cents(5000000), next.Assets[0].BalanceCents, "nil fields leave the asset alone")
}

func TestLiabilityOverrideApply(t *testing.T) {
	base := baseSnapshot()
	next, err := Apply(base, []Override{
		&LiabilityOverride{
			LiabilityName:       "car loan",
			BalanceCents:        centsPtr(0),
			MonthlyPaymentCents: centsPtr(0),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, money.Cents(0), next.Liabilities[0].BalanceCents)
	assert.Equal(t, money.Cents(0), next.Liabilities[0].MonthlyPaymentCents)
	assert.Equal(t, money.Cents(2000000), base.Liabilities[0].BalanceCents)
}

func TestCashFlowOverrideApply(t *testing.T) {
	next, err := Apply(baseSnapshot(), []Override{
		&CashFlowOverride{CashFlowName: "salary", MonthlyAmountCents: centsPtr(700000)},
	})
	require.NoError(t, err)
	assert.Equal(t, money.Cents(700000), next.CashFlows[0].MonthlyAmountCents)
}

func TestApplySequencing(t *testing.T) {
	// Later overrides see the output of earlier ones: the second override
	// rewrites the balance the first one set.
	next, err := Apply(baseSnapshot(), []Override{
		&AssetOverride{AssetName: "brokerage", BalanceCents: centsPtr(1)},
		&AssetOverride{AssetName: "brokerage", BalanceCents: centsPtr(9999999)},
	})
	require.NoError(t, err)
	assert.Equal(t, money.Cents(9999999), next.Assets[0].BalanceCents)
}

func TestApplyUnknownTarget(t *testing.T) {
	tests := []struct {
		name string
		ov   Override
	}{
		{"unknown asset", &AssetOverride{AssetName: "yacht"}},
		{"unknown liability", &LiabilityOverride{LiabilityName: "yacht loan"}},
		{"unknown cash flow", &CashFlowOverride{CashFlowName: "royalties"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(baseSnapshot(), []Override{tt.ov})
			require.Error(t, err)
			var oe *OverrideError
			require.True(t, errors.As(err, &oe), "want OverrideError, got %T", err)
			assert.Equal(t, tt.ov.Name(), oe.Override)
		})
	}
}

func TestApplyRejectsNegativeBalance(t *testing.T) {
	_, err := Apply(baseSnapshot(), []Override{
		&AssetOverride{AssetName: "brokerage", BalanceCents: centsPtr(-1)},
	})
	require.Error(t, err)
	var oe *OverrideError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, "validation failed", oe.Reason)
}

func TestApplyNilBase(t *testing.T) {
	_, err := Apply(nil, nil)
	require.Error(t, err)
}

func TestApplyNilOverride(t *testing.T) {
	_, err := Apply(baseSnapshot(), []Override{nil})
	require.Error(t, err)
}

func TestApplyNoOverridesCopies(t *testing.T) {
	base := baseSnapshot()
	next, err := Apply(base, nil)
	require.NoError(t, err)
	require.NotSame(t, base, next)
	assert.Equal(t, base, next)
}

func TestOverrideNames(t *testing.T) {
	assert.Equal(t, "asset:brokerage", (&AssetOverride{AssetName: "brokerage"}).Name())
	assert.Equal(t, "liability:car loan", (&LiabilityOverride{LiabilityName: "car loan"}).Name())
	assert.Equal(t, "cash_flow:salary", (&CashFlowOverride{CashFlowName: "salary"}).Name())
}
