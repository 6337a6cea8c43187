// Package customer provides the Customer aggregate: the client a framing
// order belongs to and the contact channels status notifications reach them on.
package customer
