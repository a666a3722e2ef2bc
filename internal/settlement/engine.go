package settlement

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fkhayef/haulledger/internal/company"
	"github.com/fkhayef/haulledger/internal/driver"
	"github.com/fkhayef/haulledger/internal/expense"
	"github.com/fkhayef/haulledger/internal/ifta"
	"github.com/fkhayef/haulledger/internal/load"
	"github.com/fkhayef/haulledger/internal/period"
	"github.com/fkhayef/haulledger/internal/settlement/payitem"
	"github.com/fkhayef/haulledger/pkg/money"
)

const (
	notApplicable = "N/A"
	timestampFmt  = "2006-01-02 15:04:05"
)

var errIncompleteInput = errors.New("settlement input requires a driver and a pay rate")

// Input is everything a settlement is computed from. Selection and
// exclusion have already been applied.
type Input struct {
	Driver        *driver.Driver
	PayRate       *driver.PayRate
	Company       *company.Company
	Period        period.Period
	Loads         []*load.Load
	Expenses      []*expense.Expense
	IftaRecords   []*ifta.Record
	InvoiceNumber *string
	WeeklyNumber  *int
	MilesRate     decimal.Decimal
	GeneratedAt   time.Time
}

// Engine turns an Input into a statement. It does no I/O.
type Engine struct {
	items *payitem.Factory
	log   *zap.Logger
}

// NewEngine creates a settlement engine
func NewEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{items: payitem.NewFactory(), log: log}
}

// tally accumulates the running sums and audit fragments of one run
type tally struct {
	totals          Totals
	loadFormulas    []string
	otherFormulas   []string
	incomeFormulas  []string
	expenseFormulas []string
	iftaFormulas    []string
	skipped         []string
}

func (t *tally) skip(format string, args ...any) {
	t.skipped = append(t.skipped, fmt.Sprintf(format, args...))
}

func block(parts []string, result decimal.Decimal) AggregateBlock {
	if len(parts) == 0 {
		return AggregateBlock{Formula: notApplicable, Result: money.FormatUSD(result)}
	}
	var b strings.Builder
	for i, p := range parts {
		switch {
		case i == 0:
			b.WriteString(p)
		case strings.HasPrefix(p, "-"):
			b.WriteString(" - " + strings.TrimPrefix(p, "-"))
		default:
			b.WriteString(" + " + p)
		}
	}
	return AggregateBlock{Formula: b.String(), Result: money.FormatUSD(result)}
}

// usable parses a stored amount. Blank, zero and malformed amounts are not
// usable; the reason is empty for blanks since those are simply unset.
func usable(a money.Amount) (decimal.Decimal, string) {
	v, err := a.Decimal()
	switch {
	case errors.Is(err, money.ErrEmptyAmount):
		return decimal.Zero, ""
	case err != nil:
		return decimal.Zero, err.Error()
	case v.IsZero():
		return decimal.Zero, ""
	}
	return v, ""
}

func note(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Compute builds the statement for in
func (e *Engine) Compute(in Input) (*Result, error) {
	if in.Driver == nil || in.PayRate == nil {
		return nil, errIncompleteInput
	}

	t := &tally{}
	res := &Result{
		Driver:               driverInfo(in),
		CompanyInfo:          in.Company.ToInfo(),
		Loads:                make([]LoadBreakdown, 0, len(in.Loads)),
		ChargebackDeductions: []ChargebackDeduction{},
		Expenses:             make([]ExpenseDetail, 0, len(in.Expenses)),
		Ifta:                 make([]IftaDetail, 0, len(in.IftaRecords)),
	}

	for _, l := range in.Loads {
		res.Loads = append(res.Loads, e.loadLine(l, in.PayRate.Standart, t, res))
	}

	escrow := in.Driver.Escrow()
	res.EscrowDeduction = AggregateBlock{Formula: notApplicable, Result: money.FormatUSD(decimal.Zero)}
	if escrow.IsPositive() {
		t.totals.Escrow = money.Round2(escrow)
		res.EscrowDeduction = AggregateBlock{
			Formula: money.FormatDeduction(t.totals.Escrow),
			Result:  money.FormatUSD(t.totals.Escrow),
		}
	}

	for _, x := range in.Expenses {
		if d, ok := e.expenseLine(x, t); ok {
			res.Expenses = append(res.Expenses, d)
		}
	}

	for _, r := range in.IftaRecords {
		tax := money.Round2(r.Tax)
		t.totals.Ifta = t.totals.Ifta.Add(tax)
		t.iftaFormulas = append(t.iftaFormulas, money.FormatUSD(tax))
		res.Ifta = append(res.Ifta, IftaDetail{
			State:            r.State,
			Quarter:          string(r.Quarter),
			WeeklyNumber:     r.WeeklyNumber,
			TotalMiles:       r.TotalMiles.StringFixed(money.CurrencyPlaces),
			NetTaxableGallon: money.FormatGallons(r.NetTaxableGallon),
			Tax:              money.FormatUSD(tax),
		})
	}

	tot := &t.totals
	tot.Unclamped = tot.LoadPays.
		Add(tot.OtherPays).
		Sub(tot.Chargebacks).
		Sub(tot.Escrow).
		Sub(tot.Expenses).
		Add(tot.Income).
		Sub(tot.Ifta)
	tot.Pay = money.ClampZero(tot.Unclamped)

	res.TotalLoadPays = block(t.loadFormulas, tot.LoadPays)
	res.TotalOtherPays = block(t.otherFormulas, tot.OtherPays)
	res.TotalExpenses = block(t.expenseFormulas, tot.Expenses)
	res.TotalIncome = block(t.incomeFormulas, tot.Income)
	res.TotalIfta = block(t.iftaFormulas, tot.Ifta)
	res.TotalPay = block(totalParts(tot), tot.Pay)
	res.Totals = *tot
	res.Skipped = t.skipped

	if in.Driver.IsCompanyDriver() {
		res.CompanyDriverData = ComputeMileage(in.Loads, in.MilesRate)
	}

	for _, s := range t.skipped {
		e.log.Warn("settlement line skipped",
			zap.Int64("driver_id", in.Driver.ID),
			zap.String("period", in.Period.String()),
			zap.String("reason", s),
		)
	}
	return res, nil
}

// loadLine computes one load: its base percentage plus every classified
// other-pay item. Chargebacks reduce the line and are also listed apart.
func (e *Engine) loadLine(l *load.Load, rate decimal.NullDecimal, t *tally, res *Result) LoadBreakdown {
	line := LoadBreakdown{
		LoadNumber: l.LoadID,
		ID:         l.ID,
		Pickup:     l.PickupStop().Display(),
		Delivery:   l.DeliveryStop().Display(),
		Formula:    notApplicable,
		Notes:      note(l.Note),
	}

	payment := decimal.Zero
	pay, reason := usable(l.LoadPay)
	if reason != "" {
		t.skip("load %s: load_pay %s", l.LoadID, reason)
	}
	// Credit-memo loads carry a negative pay and reduce the total.
	if !pay.IsZero() && rate.Valid && !rate.Decimal.IsZero() {
		payment = money.Percent(pay, rate.Decimal)
		t.totals.LoadPays = t.totals.LoadPays.Add(payment)
		line.Formula = money.FormatUSD(pay) + " * " + money.FormatRate(rate.Decimal) + "%"
	}

	chargebacks := decimal.Zero
	var details []OtherPayDetail
	for _, item := range l.OtherPays {
		amount, reason := usable(item.Amount)
		if reason != "" {
			t.skip("load %s: %s amount %s", l.LoadID, item.PayType, reason)
		}
		if amount.IsZero() {
			continue
		}

		c := e.items.Classify(item.PayType, amount, rate)
		payment = payment.Add(c.Signed)
		if c.IsDeduction() {
			deducted := c.Signed.Neg()
			chargebacks = chargebacks.Add(deducted)
			t.totals.Chargebacks = t.totals.Chargebacks.Add(deducted)
			res.ChargebackDeductions = append(res.ChargebackDeductions, ChargebackDeduction{
				LoadID:  l.LoadID,
				Amount:  money.FormatUSD(deducted),
				Note:    note(item.Note),
				PayType: item.PayType,
			})
		} else {
			t.totals.OtherPays = t.totals.OtherPays.Add(c.Signed)
			t.otherFormulas = append(t.otherFormulas, c.Formula)
		}

		details = append(details, OtherPayDetail{
			PayType: item.PayType,
			Formula: c.Formula,
			Result:  c.Result,
			Note:    note(item.Note),
		})
	}

	line.Amount = payment
	line.Result = money.FormatUSD(payment)
	line.OtherPayments = details
	if chargebacks.IsPositive() {
		s := money.FormatUSD(chargebacks)
		line.ChargebackDeduction = &s
	}
	if line.Formula != notApplicable {
		t.loadFormulas = append(t.loadFormulas, fmt.Sprintf("(%s = %s)", line.Formula, line.Result))
	}
	return line
}

func (e *Engine) expenseLine(x *expense.Expense, t *tally) (ExpenseDetail, bool) {
	amount, reason := usable(x.Amount)
	if reason != "" {
		t.skip("expense %d: amount %s", x.ID, reason)
	}
	if amount.IsZero() {
		return ExpenseDetail{}, false
	}
	amount = money.Round2(amount)

	d := ExpenseDetail{
		Description: x.Description,
		Result:      money.FormatUSD(amount),
		Date:        x.ExpenseDate.Format(period.DateLayout),
	}
	switch x.TransactionType {
	case expense.TransactionIncome:
		t.totals.Income = t.totals.Income.Add(amount)
		t.incomeFormulas = append(t.incomeFormulas, money.FormatUSD(amount))
		d.Formula = "+" + money.FormatUSD(amount)
		d.Type = "Income"
	case expense.TransactionExpense:
		t.totals.Expenses = t.totals.Expenses.Add(amount)
		t.expenseFormulas = append(t.expenseFormulas, money.FormatUSD(amount))
		d.Formula = "-" + money.FormatUSD(amount)
		d.Type = "Expense"
	default:
		t.skip("expense %d: unknown transaction type %q", x.ID, x.TransactionType)
		return ExpenseDetail{}, false
	}
	return d, true
}

// totalParts lists each nonzero component of the final total
func totalParts(t *Totals) []string {
	var parts []string
	if !t.LoadPays.IsZero() {
		parts = append(parts, "Load Pays: "+money.FormatUSD(t.LoadPays))
	}
	if !t.OtherPays.IsZero() {
		parts = append(parts, "Other Pays: "+money.FormatUSD(t.OtherPays))
	}
	if t.Chargebacks.IsPositive() {
		parts = append(parts, "Chargeback: "+money.FormatDeduction(t.Chargebacks))
	}
	if t.Escrow.IsPositive() {
		parts = append(parts, "Escrow: "+money.FormatDeduction(t.Escrow))
	}
	if t.Income.IsPositive() {
		parts = append(parts, "Income: "+money.FormatUSD(t.Income))
	}
	if t.Expenses.IsPositive() {
		parts = append(parts, "Expenses: "+money.FormatDeduction(t.Expenses))
	}
	switch {
	case t.Ifta.IsPositive():
		parts = append(parts, "IFTA: "+money.FormatDeduction(t.Ifta))
	case t.Ifta.IsNegative():
		parts = append(parts, "IFTA credit: "+money.FormatUSD(t.Ifta.Neg()))
	}
	return parts
}

func driverInfo(in Input) DriverInfo {
	d := in.Driver
	stamp := in.GeneratedAt.Format(timestampFmt)
	return DriverInfo{
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		ContactNumber: d.Telephone,
		Address1:      d.Address,
		GenerateDate:  stamp,
		ReportDate:    stamp,
		SearchFrom:    in.Period.From.Format(period.DateLayout),
		SearchTo:      in.Period.To.Format(period.DateLayout),
		CompanyName:   d.CompanyName,
		InvoiceNumber: in.InvoiceNumber,
		WeeklyNumber:  in.WeeklyNumber,
	}
}
