// Package clinic holds the clinic's domain rules: the appointment and
// treatment-plan state machines, plan pricing, session progress and payment
// reconciliation.
//
// Every function takes entity snapshots by value and returns new snapshots;
// inputs are never mutated and nothing here performs I/O or logs. Callers
// load entities, run them through these rules, and persist the result.
package clinic
