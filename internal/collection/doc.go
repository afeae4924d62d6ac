// Package collection holds a screen's fetched records in memory and applies
// optimistic mutations to them: prepend after create, shallow replace after
// update, remove after delete. Every screen used to hand-roll these merges;
// this is the single shared implementation, and each successful mutation
// publishes an invalidation event so interested subscribers (the snapshot
// store, the activity log) can react without each screen knowing about them.
//
// The store trusts the caller's submitted values as the new truth until the
// next full fetch; server-derived fields are deliberately not reconciled.
package collection
