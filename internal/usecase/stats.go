package usecase

import "context"

type StatsOutput struct {
	Leads        *LeadStats        `json:"leads"`
	DemoRequests *DemoRequestStats `json:"demoRequests"`
	Summary      StatsSummary      `json:"summary"`
}

type StatsSummary struct {
	TotalLeads        int     `json:"totalLeads"`
	TotalDemoRequests int     `json:"totalDemoRequests"`
	PendingDemos      int     `json:"pendingDemos"`
	ConversionRate    float64 `json:"conversionRate"`
	NewLeadsThisMonth int     `json:"newLeadsThisMonth"`
	DemosThisMonth    int     `json:"demosThisMonth"`
}

type GetStatsUseCase struct {
	LeadRepo LeadRepositoryInterface
	DemoRepo DemoRequestRepositoryInterface
}

func NewGetStatsUseCase(leadRepo LeadRepositoryInterface, demoRepo DemoRequestRepositoryInterface) *GetStatsUseCase {
	return &GetStatsUseCase{LeadRepo: leadRepo, DemoRepo: demoRepo}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*StatsOutput, error) {
	leadStats, err := uc.LeadRepo.Stats(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load lead stats: " + err.Error()}
	}

	demoStats, err := uc.DemoRepo.Stats(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load demo stats: " + err.Error()}
	}

	return &StatsOutput{
		Leads:        leadStats,
		DemoRequests: demoStats,
		Summary: StatsSummary{
			TotalLeads:        leadStats.Total,
			TotalDemoRequests: demoStats.Total,
			PendingDemos:      demoStats.Pending,
			ConversionRate:    demoStats.ConversionRate,
			NewLeadsThisMonth: leadStats.ThisMonth,
			DemosThisMonth:    demoStats.ThisMonth,
		},
	}, nil
}
