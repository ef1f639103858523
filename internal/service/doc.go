// Package service provides the equipment façade over the store.
//
// EquipmentService wraps each store call with an audit pair: an "attempting"
// entry before the call and a "succeeded" or "failed" entry after it. Both
// entries carry the same op=<id> attribute, so pairs from concurrent callers
// can be matched in the log. Results and errors are passed through unchanged.
//
// The service performs no validation. Empty names or non-positive quantities
// are the caller's concern; the store's own constraints are the only guard.
package service
