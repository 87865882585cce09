// Package models defines the core domain models for settleup.
//
// # Models
//
//   - Group: a set of participants sharing expenses, plus its cached settlement
//   - Expense: an amount advanced by one participant on behalf of others
//   - Transaction: one payment of the settlement that clears outstanding balances
//   - CachedSettlement: the last computed settlement of a group and whether it still holds
//
// Participants are identified by name within their group (ParticipantID). There are no
// user accounts.
//
// # Design Principles
//
// 1. **Ownership**: the cached settlement belongs to its group and is only mutated through
// the settlement coordinator.
// 2. **Avoid circular references**: use ID strings instead of pointers for relationships.
// 3. **Plain data**: models carry no behaviour beyond small helpers; storage and
// calculation live in their own packages.
package models
