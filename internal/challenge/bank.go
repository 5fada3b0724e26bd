package challenge

import (
	"github.com/IGOLIVIT/galaxy-quest/internal/content"
	"github.com/IGOLIVIT/galaxy-quest/internal/economy"
)

// Point values per question. Higher tiers pay more for the same base
// questions and unlock one extra advanced question.
const (
	basePoints     = 10
	tierPoints     = 15
	advancedPoints = 20
)

// Question is a single multiple-choice quiz entry.
type Question struct {
	Prompt       string
	Answers      []string
	CorrectIndex int
	Explanation  string
	Points       int
}

// Correct reports whether the given answer index is the right one.
func (q Question) Correct(index int) bool {
	return index == q.CorrectIndex
}

// QuestionsFor assembles the question set for a mission category at a
// difficulty tier. Beginner sessions get the base questions; every
// other tier pays more per question and, for the deeper categories,
// adds an advanced question.
func QuestionsFor(category content.ChallengeCategory, tier economy.DifficultyTier) []Question {
	points := basePoints
	if tier != economy.DifficultyBeginner {
		points = tierPoints
	}

	switch category {
	case content.CategoryBudgeting:
		qs := []Question{
			{
				Prompt:       "What percentage of income should typically be allocated to needs in a balanced budget?",
				Answers:      []string{"30%", "50%", "70%", "90%"},
				CorrectIndex: 1,
				Explanation:  "The 50/30/20 rule suggests 50% for needs, 30% for wants, and 20% for savings and debt repayment.",
				Points:       points,
			},
			{
				Prompt:       "Which expense category should be prioritized first when creating a budget?",
				Answers:      []string{"Entertainment", "Essential needs", "Luxury items", "Hobbies"},
				CorrectIndex: 1,
				Explanation:  "Essential needs like housing, food, and utilities should always be prioritized first in any budget.",
				Points:       points,
			},
		}
		if tier != economy.DifficultyBeginner {
			qs = append(qs, Question{
				Prompt:       "What is zero-based budgeting?",
				Answers:      []string{"Starting with zero income", "Allocating every dollar of income", "Having zero expenses", "Saving zero money"},
				CorrectIndex: 1,
				Explanation:  "Zero-based budgeting means every dollar of income is allocated to specific categories, leaving zero unassigned.",
				Points:       advancedPoints,
			})
		}
		return qs

	case content.CategoryInvesting:
		qs := []Question{
			{
				Prompt:       "What is compound interest?",
				Answers:      []string{"Interest on the principal only", "Interest on principal and accumulated interest", "A type of loan", "A banking fee"},
				CorrectIndex: 1,
				Explanation:  "Compound interest is earned on both the original principal and the accumulated interest from previous periods.",
				Points:       points,
			},
			{
				Prompt:       "Which investment strategy reduces risk through variety?",
				Answers:      []string{"Concentration", "Diversification", "Speculation", "Day trading"},
				CorrectIndex: 1,
				Explanation:  "Diversification spreads investments across different assets to reduce overall risk.",
				Points:       points,
			},
		}
		if tier != economy.DifficultyBeginner {
			qs = append(qs, Question{
				Prompt:       "What does P/E ratio measure?",
				Answers:      []string{"Price to Earnings", "Profit to Expenses", "Principal to Equity", "Performance to Efficiency"},
				CorrectIndex: 0,
				Explanation:  "P/E ratio (Price-to-Earnings) compares a company's stock price to its earnings per share.",
				Points:       advancedPoints,
			})
		}
		return qs

	case content.CategorySaving:
		return []Question{
			{
				Prompt:       "How many months of expenses should an emergency fund cover?",
				Answers:      []string{"1-2 months", "3-6 months", "12 months", "24 months"},
				CorrectIndex: 1,
				Explanation:  "Financial experts recommend saving 3-6 months of living expenses for emergencies.",
				Points:       points,
			},
		}

	case content.CategoryDebtManagement:
		return []Question{
			{
				Prompt:       "Which debt repayment strategy focuses on highest interest rates first?",
				Answers:      []string{"Debt snowball", "Debt avalanche", "Debt consolidation", "Minimum payments"},
				CorrectIndex: 1,
				Explanation:  "The debt avalanche method prioritizes paying off debts with the highest interest rates first to minimize total interest paid.",
				Points:       points,
			},
		}

	case content.CategoryRiskManagement:
		return []Question{
			{
				Prompt:       "What is the relationship between risk and potential return in investments?",
				Answers:      []string{"No relationship", "Higher risk, lower return", "Higher risk, higher potential return", "Lower risk, higher return"},
				CorrectIndex: 2,
				Explanation:  "Generally, investments with higher risk offer the potential for higher returns, but also greater potential for losses.",
				Points:       points,
			},
		}

	case content.CategoryEmergencyPlanning:
		return []Question{
			{
				Prompt:       "What should be the first step in emergency financial planning?",
				Answers:      []string{"Invest in stocks", "Build an emergency fund", "Buy insurance", "Pay off all debt"},
				CorrectIndex: 1,
				Explanation:  "Building an emergency fund should be the foundation of any emergency financial plan.",
				Points:       points,
			},
		}
	}

	return nil
}
