// Package models defines the core domain models for Mates.
//
// # Models
//
//   - User: a registered account; all other data hangs off one user
//   - Expense: a recorded shared cost with a payer and a split set
//
// Roommates are identified by display name strings, unique within one
// user's roster. An expense's Payer and SplitWith entries reference
// roster names but are never re-validated after entry: removing a
// roommate leaves historical expenses untouched, and dangling names
// are simply ignored by the ledger.
//
// # Design Principles
//
//  1. Derived values (balances, settlement plans, statistics) are never
//     stored; the ledger package recomputes them from roster + expenses.
//  2. Expenses are immutable after creation: add and delete only.
//  3. Relationships use ID strings rather than pointers.
package models
