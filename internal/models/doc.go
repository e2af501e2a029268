// Package models defines the core domain models for splitledger.
//
// # Models
//
//   - Member: a person, identified by a globally unique, case-sensitive name
//   - Group: a named set of members sharing expenses
//   - Expense: an amount paid by one member on behalf of a group
//   - Allocation: one member's share of one expense
//
// Balances and settlements are never stored. They are derived on every query by
// package calculator from the records defined here.
//
// # Design Principles
//
// 1. **Names as keys**: members are referenced by name, not by surrogate ID
// 2. **Explicit relationships**: groups carry member names and members carry group IDs;
// nothing is loaded lazily
// 3. **Immutable records**: expenses and their allocations are written once as a unit
package models
