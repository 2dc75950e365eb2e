package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrHoldingNotFound indicates that no holding exists for the given symbol.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrLedgerEntryNotFound indicates that a ledger entry with the given ID does not exist.
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")

	// ErrDividendNotFound indicates that a dividend record with the given ID does not exist.
	ErrDividendNotFound = errors.New("dividend not found")

	// ErrDCARecordNotFound indicates that a contribution record with the given ID does not exist.
	ErrDCARecordNotFound = errors.New("dca record not found")

	// ErrPriceNotFound indicates that no cached price exists for the given symbol.
	ErrPriceNotFound = errors.New("price not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrUnknownSymbol indicates that the referenced symbol is not part of
	// the holding universe; ledger, dividend and DCA records can only be
	// attached to an existing holding.
	ErrUnknownSymbol = errors.New("symbol has no holding")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Operation errors are stable messages for failed service operations,
// surfaced as the top-level error field of HTTP responses.
var (
	ErrFailedToRetrieveHoldings  = errors.New("failed to retrieve holdings")
	ErrFailedToRetrieveLedger    = errors.New("failed to retrieve ledger entries")
	ErrFailedToRetrieveDividends = errors.New("failed to retrieve dividends")
	ErrFailedToRetrieveDCA       = errors.New("failed to retrieve dca records")
	ErrFailedToBuildDashboard    = errors.New("failed to build dashboard")
)
