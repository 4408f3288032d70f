package tui

// Sample message bundles for quick demos.
var samples = []string{
	"SBIN: Rs.500.00 debited on 21/11/2025 at ATM. Your balance is Rs.1500.00\nHDFC: Your account credited with INR 12000 on 01-Nov-2025. Salary received.",
	"UPI: Rs.200 paid to Flipkart on 02-Nov-2025\nAXIS: Rs.150.00 debited for electricity bill on 05-Nov-2025\nYour EMI of Rs.3000 is debited on 10-Nov-2025",
	"Salary credited: INR 25000 on 01-Dec-2025\nGroceries paid Rs.1200 via UPI\nLoan EMI Rs.2500 debited",
}
