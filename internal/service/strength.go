package service

import (
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

// StrengthService maps strength evaluation requests onto the core
// evaluator.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Evaluate scores the request's password against the supplied
// requirements. Evaluation never fails.
func (s *StrengthService) Evaluate(req model.StrengthRequest) model.StrengthResponse {
	report := crypto.Evaluate(req.Password, requirementsFromRequest(req.Requirements))

	resp := model.StrengthResponse{
		Success: true,
		Checks: model.StrengthChecks{
			HasUppercase:   report.Checks.HasUppercase,
			HasLowercase:   report.Checks.HasLowercase,
			HasNumbers:     report.Checks.HasNumbers,
			HasSymbols:     report.Checks.HasSymbols,
			Length:         report.Checks.Length,
			MeetsMinLength: report.Checks.MeetsMinLength,
		},
		Score:    report.Score,
		Strength: report.Strength,
		Passed:   report.Passed,
	}
	if len(report.RequirementResults) > 0 {
		resp.RequirementResults = report.RequirementResults
	}
	return resp
}

// requirementsFromRequest converts the DTO requirements into core
// requirements, dropping fields the caller did not supply.
func requirementsFromRequest(reqs *model.StrengthRequirements) crypto.Requirements {
	if reqs == nil {
		return crypto.Requirements{}
	}

	out := crypto.Requirements{MinLength: reqs.MinLength}
	if reqs.RequireUppercase.Set {
		out.RequireUppercase = &reqs.RequireUppercase.Value
	}
	if reqs.RequireLowercase.Set {
		out.RequireLowercase = &reqs.RequireLowercase.Value
	}
	if reqs.RequireNumbers.Set {
		out.RequireNumbers = &reqs.RequireNumbers.Value
	}
	if reqs.RequireSymbols.Set {
		out.RequireSymbols = &reqs.RequireSymbols.Value
	}
	return out
}
