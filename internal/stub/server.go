// Package stub provides a local stand-in for the analysis service so
// the dashboard can be demoed offline. It serves canned fixtures and
// implements none of the real extraction semantics.
package stub

import (
	"strings"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kredita/kredita/internal/model"
)

type analyzeRequest struct {
	Text string `json:"text"`
}

// fixtures are cycled through, one per non-empty input line, so the
// response size tracks the input without any real parsing.
var fixtures = []model.Transaction{
	{Type: model.TypeCredit, Category: "salary", Date: "01-11-2025", Amount: 25000},
	{Type: model.TypeDebit, Category: "shopping", Date: "02-11-2025", Amount: 1200},
	{Type: model.TypeDebit, Category: "emi", Date: "05-11-2025", Amount: 3000},
	{Type: model.TypeDebit, Category: "bills", Date: "07-11-2025", Amount: 850},
	{Type: model.TypeDebit, Category: "food", Date: "09-11-2025", Amount: 640},
}

var tips = []string{
	"Pay EMIs on time to protect your score.",
	"Keep monthly spending below 70% of income.",
	"Build an emergency fund of 3-6 months of expenses.",
}

// New builds the stub application.
func New() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:     "kredita-stub",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"detail": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", handleHealth)
	app.Post("/parse", handleParse)
	app.Post("/score", handleScore)
	return app
}

func handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func handleParse(c *fiber.Ctx) error {
	txns, err := transactionsFor(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"transactions": txns})
}

func handleScore(c *fiber.Ctx) error {
	txns, err := transactionsFor(c)
	if err != nil {
		return err
	}

	metrics := metricsFor(txns)
	return c.JSON(fiber.Map{
		"transactions": txns,
		"score":        scoreFor(metrics),
		"metrics":      metrics,
		"advice":       adviceFor(metrics),
	})
}

// transactionsFor validates the request and returns one fixture per
// non-empty input line.
func transactionsFor(c *fiber.Ctx) ([]model.Transaction, error) {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "text is required")
	}

	var txns []model.Transaction
	for _, line := range strings.Split(req.Text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		txns = append(txns, fixtures[len(txns)%len(fixtures)])
	}
	return txns, nil
}

func metricsFor(txns []model.Transaction) model.Metrics {
	var m model.Metrics
	for _, t := range txns {
		switch {
		case t.IsCredit():
			m.Income += t.Amount
		case t.Category == "emi":
			m.EMI += t.Amount
		default:
			m.Expense += t.Amount
		}
	}

	m.Savings = m.Income - m.Expense - m.EMI
	if m.Income > 0 {
		dti := m.EMI / m.Income
		rate := m.Savings / m.Income
		m.DTI = &dti
		m.SavingsRate = &rate
	}
	return m
}

func scoreFor(m model.Metrics) int {
	score := 50
	if m.SavingsRate != nil {
		score += int(*m.SavingsRate * 40)
	}
	if m.DTI != nil {
		score -= int(*m.DTI * 30)
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func adviceFor(m model.Metrics) model.Advice {
	advice := model.Advice{Tips: tips}

	if m.DTI != nil && *m.DTI < 0.4 {
		emi := m.Income * 0.1
		advice.Loan = &model.LoanAdvice{
			CanTakeLoan:     true,
			SuggestedNewEMI: emi,
			Reason:          "Your debt-to-income ratio leaves room for a new EMI.",
			ApproxLoanAmounts: []model.LoanOption{
				{TenureYears: 3, ApproxLoanAmount: emi * 36},
				{TenureYears: 5, ApproxLoanAmount: emi * 60},
			},
		}
	}
	if m.SavingsRate != nil && *m.SavingsRate > 0.1 {
		advice.SIP = &model.SIPAdvice{
			ShouldInvest: true,
			SuggestedSIP: m.Savings * 0.5,
			RiskProfile:  model.RiskBalanced,
			Reason:       "You save consistently; a monthly SIP compounds that surplus.",
		}
	}
	return advice
}
