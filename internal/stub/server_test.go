package stub

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kredita/kredita/internal/model"
)

func doJSON(t *testing.T, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := New().Test(req)
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := New().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestParseReturnsOneFixturePerLine(t *testing.T) {
	resp := doJSON(t, "/parse", `{"text":"line one\n\nline two\nline three"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Transactions []model.Transaction `json:"transactions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out.Transactions, 3, "blank lines do not produce transactions")
}

func TestParseRejectsEmptyText(t *testing.T) {
	resp := doJSON(t, "/parse", `{"text":"   \n  "}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestParseRejectsMalformedBody(t *testing.T) {
	resp := doJSON(t, "/parse", `{"text": `)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScoreShape(t *testing.T) {
	resp := doJSON(t, "/score", `{"text":"a\nb\nc\nd\ne"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Transactions []model.Transaction `json:"transactions"`
		Score        int                 `json:"score"`
		Metrics      model.Metrics       `json:"metrics"`
		Advice       model.Advice        `json:"advice"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	assert.Len(t, out.Transactions, 5)
	assert.GreaterOrEqual(t, out.Score, 0)
	assert.LessOrEqual(t, out.Score, 100)
	assert.Equal(t, 25000.0, out.Metrics.Income)
	require.NotNil(t, out.Metrics.DTI)
	assert.NotEmpty(t, out.Advice.Tips)
}

func TestMetricsWithoutIncome(t *testing.T) {
	m := metricsFor([]model.Transaction{
		{Type: model.TypeDebit, Category: "food", Amount: 100},
	})

	assert.Nil(t, m.DTI)
	assert.Nil(t, m.SavingsRate)
	assert.Equal(t, 50, scoreFor(m))
}

func TestAdviceGating(t *testing.T) {
	lowDTI := 0.1
	highRate := 0.5
	advice := adviceFor(model.Metrics{Income: 10000, Savings: 5000, DTI: &lowDTI, SavingsRate: &highRate})
	assert.NotNil(t, advice.Loan)
	assert.NotNil(t, advice.SIP)

	highDTI := 0.6
	lowRate := 0.05
	advice = adviceFor(model.Metrics{Income: 10000, DTI: &highDTI, SavingsRate: &lowRate})
	assert.Nil(t, advice.Loan)
	assert.Nil(t, advice.SIP)
	assert.NotEmpty(t, advice.Tips, "tips are always present")
}
