package driver

import (
	"context"

	"github.com/shopspring/decimal"
)

// EscrowPostings returns the two postings that record escrow withheld by a
// settlement: a deduction against the payout and a credit to the driver's
// escrow balance. Both carry the positive amount.
func EscrowPostings(driverID, settlementID int64, amount decimal.Decimal) []*LedgerEntry {
	sid := settlementID
	return []*LedgerEntry{
		{DriverID: driverID, SettlementID: &sid, Kind: LedgerSettlementDeduction, Amount: amount},
		{DriverID: driverID, SettlementID: &sid, Kind: LedgerEscrowBalanceCredit, Amount: amount},
	}
}

// PostEscrow writes the escrow postings and applies the balance credit. It
// must run inside the settlement's transaction.
func (r *Repository) PostEscrow(ctx context.Context, driverID, settlementID int64, amount decimal.Decimal) ([]*LedgerEntry, error) {
	entries := EscrowPostings(driverID, settlementID, amount)
	for _, e := range entries {
		if err := r.AddLedgerEntry(ctx, e); err != nil {
			return nil, err
		}
		if e.Kind == LedgerEscrowBalanceCredit {
			if err := r.AddToBalance(ctx, driverID, e.Amount); err != nil {
				return nil, err
			}
		}
	}
	return entries, nil
}
