// Package authz holds the explicit authorization checks invoked at the top
// of mutating handlers. Checks return a Decision instead of short-circuiting
// control flow, so a handler always states what it did with the answer.
package authz

import (
	"github.com/baigashl/blog/internal/models"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	allowed bool
	reason  string
}

// Allowed is the positive decision.
var Allowed = Decision{allowed: true}

// Denied returns a negative decision with a reason for logs.
func Denied(reason string) Decision {
	return Decision{reason: reason}
}

func (d Decision) Allowed() bool { return d.allowed }

// Reason returns why the decision was denied; empty when allowed.
func (d Decision) Reason() string { return d.reason }

// CanModifyPost decides whether user may update or delete post. Only the
// author may mutate a post; authorship is fixed at creation.
func CanModifyPost(user *models.User, post *models.Post) Decision {
	if user == nil {
		return Denied("not authenticated")
	}
	if post.AuthorID != user.ID {
		return Denied("not the author")
	}
	return Allowed
}
