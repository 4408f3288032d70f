package model

// Metrics holds the aggregate figures the service derived from the
// transaction list. DTI and SavingsRate are nil when no stable income
// was detected.
type Metrics struct {
	DTI         *float64 `json:"dti"`
	SavingsRate *float64 `json:"savings_rate"`
	Income      float64  `json:"income"`
	Expense     float64  `json:"expense"`
	EMI         float64  `json:"emi"`
	Savings     float64  `json:"savings"`
}

// ScoreResult is the credit-health portion of a scoring response. It
// replaces any prior result atomically and is cleared on an explicit
// clear action.
type ScoreResult struct {
	Advice  Advice  `json:"advice"`
	Metrics Metrics `json:"metrics"`
	Score   int     `json:"score"` // 0-100
}

// RiskProfile classifies a SIP suggestion's aggressiveness.
type RiskProfile string

// Risk profiles the service may return.
const (
	RiskConservative RiskProfile = "conservative"
	RiskBalanced     RiskProfile = "balanced"
	RiskAggressive   RiskProfile = "aggressive"
)

// LoanOption pairs a tenure with the loan principal a suggested EMI
// could service over it.
type LoanOption struct {
	TenureYears      float64 `json:"tenure_years"`
	ApproxLoanAmount float64 `json:"approx_loan_amount"`
}

// LoanAdvice is the loan-affordability recommendation.
type LoanAdvice struct {
	Reason            string       `json:"reason"`
	ApproxLoanAmounts []LoanOption `json:"approx_loan_amounts,omitempty"`
	SuggestedNewEMI   float64      `json:"suggested_new_emi,omitempty"`
	CanTakeLoan       bool         `json:"can_take_loan"`
}

// SIPAdvice is the systematic-investment-plan recommendation.
type SIPAdvice struct {
	Reason       string      `json:"reason"`
	RiskProfile  RiskProfile `json:"risk_profile,omitempty"`
	SuggestedSIP float64     `json:"suggested_sip,omitempty"`
	ShouldInvest bool        `json:"should_invest"`
}

// Advice bundles the recommendation panels. Each field may be absent
// depending on what the service could derive.
type Advice struct {
	Loan *LoanAdvice `json:"loan,omitempty"`
	SIP  *SIPAdvice  `json:"sip,omitempty"`
	Tips []string    `json:"tips,omitempty"`
}

// ScoreLabel maps a score to its qualitative band.
func ScoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}
