package model

// AdviceTab identifies one of the recommendation panels.
type AdviceTab int

// Advice panels in priority order.
const (
	TabNone AdviceTab = iota
	TabLoan
	TabSIP
	TabTips
)

// String returns the panel's display name.
func (t AdviceTab) String() string {
	switch t {
	case TabLoan:
		return "Loan"
	case TabSIP:
		return "SIP"
	case TabTips:
		return "Tips"
	default:
		return ""
	}
}

// Has reports whether the advice object populates the given panel.
func (a Advice) Has(tab AdviceTab) bool {
	switch tab {
	case TabLoan:
		return a.Loan != nil
	case TabSIP:
		return a.SIP != nil
	case TabTips:
		return len(a.Tips) > 0
	default:
		return false
	}
}

// Available lists the populated panels in priority order.
func (a Advice) Available() []AdviceTab {
	var tabs []AdviceTab
	for _, tab := range []AdviceTab{TabLoan, TabSIP, TabTips} {
		if a.Has(tab) {
			tabs = append(tabs, tab)
		}
	}
	return tabs
}

// DefaultTab selects the panel shown when this advice first arrives:
// loan if present, else SIP, else tips, else none.
func (a Advice) DefaultTab() AdviceTab {
	if tabs := a.Available(); len(tabs) > 0 {
		return tabs[0]
	}
	return TabNone
}
