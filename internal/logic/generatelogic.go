package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"votum-api/internal/svc"
	"votum-api/internal/types"
	"votum-api/pkg/brief"
	"votum-api/pkg/llm"
)

// generation temperature matches the tone expected of the formal assessment
const generationTemperature = 0.4

type GenerateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGenerateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GenerateLogic {
	return &GenerateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Generate compiles the application into the two-part prompt and awaits the
// narrative generator exactly once. The returned text passes through
// unchanged.
func (l *GenerateLogic) Generate(req *types.GenerateRequest) (*types.GenerateResponse, error) {
	app := mapApplication(req)
	if err := brief.Validate(app); err != nil {
		return nil, err
	}

	prompt := l.svcCtx.Assembler.Assemble(app)

	temp := generationTemperature
	resp, err := l.svcCtx.LLM.Chat(l.ctx, &llm.ChatRequest{
		Temperature: &temp,
		Messages: []llm.Message{
			{Role: "system", Content: prompt.Instructions},
			{Role: "user", Content: prompt.Brief},
		},
	})
	if err != nil {
		l.Errorf("narrative generation failed: %v", err)
		return nil, err
	}

	return &types.GenerateResponse{Text: resp.Text()}, nil
}

func mapApplication(req *types.GenerateRequest) *brief.Application {
	app := &brief.Application{
		Type:           brief.FinancingType(req.FinancingType),
		Recommendation: req.Recommendation,
		Approval:       req.Approval,
		CollateralText: req.CollateralText,
		Risk: brief.RiskProfile{
			HouseholdCalc:     req.RiskProfile.HouseholdCalc,
			OtherCreditVolume: req.RiskProfile.OtherCreditVolume,
			Registry: brief.RegistryIndicator{
				Flagged: req.RiskProfile.Registry.Flagged,
				Reason:  req.RiskProfile.Registry.Reason,
			},
			ForbearanceText: req.RiskProfile.ForbearanceText,
		},
		Bureau: brief.BureauReport{Count: req.BureauEntries.Count},
		Scoring: brief.ScoringMetrics{
			DebtBurdenRatio:  req.ScoringMetrics.DebtBurdenRatio,
			DebtServiceRatio: req.ScoringMetrics.DebtServiceRatio,
			LoanToValue:      req.ScoringMetrics.LoanToValue,
			EquityRatio:      req.ScoringMetrics.EquityRatio,
			Justification:    req.ScoringMetrics.Justification,
		},
	}

	for _, b := range req.Borrowers {
		app.Borrowers = append(app.Borrowers, brief.Borrower{
			Name:              b.Name,
			Family:            b.Family,
			CurrentAddress:    b.CurrentAddress,
			Housing:           b.Housing,
			Occupation:        b.Occupation,
			EmployedSince:     b.EmployedSince,
			NetIncome:         b.NetIncome,
			OtherIncomeDesc:   b.OtherIncomeDesc,
			OtherIncomeAmount: b.OtherIncomeAmount,
			CustomerSince:     b.CustomerSince,
			MainBank:          b.MainBank,
			AccountBehaviour:  b.AccountBehaviour,
		})
	}

	if t := req.FinancingParameters.RealEstate; t != nil {
		app.RealEstate = &brief.RealEstateTerms{
			PropertyAddress:       t.PropertyAddress,
			PurchasePriceTEUR:     t.PurchasePriceTEUR,
			IncidentalCostsTEUR:   t.IncidentalCostsTEUR,
			RenovationTEUR:        t.RenovationTEUR,
			NotarialTEUR:          t.NotarialTEUR,
			EquityTEUR:            t.EquityTEUR,
			FixedRatePercent:      t.FixedRatePercent,
			FixedRateYears:        t.FixedRateYears,
			FixedRateEnd:          t.FixedRateEnd,
			VariableRateText:      t.VariableRateText,
			EarlyRepaymentAllowed: t.EarlyRepaymentAllowed,
		}
	}
	if t := req.FinancingParameters.Consumer; t != nil {
		app.Consumer = &brief.ConsumerTerms{
			Purpose:    t.Purpose,
			AmountTEUR: t.AmountTEUR,
			EquityTEUR: t.EquityTEUR,
		}
	}

	for _, e := range req.BureauEntries.Entries {
		app.Bureau.Entries = append(app.Bureau.Entries, brief.BureauEntry{
			Kind:         e.Kind,
			AmountTEUR:   e.AmountTEUR,
			FirstPayment: e.FirstPayment,
			TermMonths:   e.TermMonths,
			Borrower:     e.Borrower,
		})
	}

	for _, s := range req.ScoringMetrics.BorrowerScores {
		app.Scoring.BorrowerScores = append(app.Scoring.BorrowerScores, brief.BorrowerScore{
			Rating: s.Rating,
			Score:  s.Score,
		})
	}

	return app
}
