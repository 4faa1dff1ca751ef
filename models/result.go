package models

import "strings"

// Status classifies the outcome of a write operation.
type Status int

const (
	StatusCreated Status = iota
	StatusUpdated
	StatusDeleted
	// StatusNotFound: the primary subject of the request does not exist.
	StatusNotFound
	// StatusReferenceNotFound: an embedded foreign reference (customer id on
	// an order, menu item id on a line) names a row that does not exist.
	StatusReferenceNotFound
	StatusInvalid
	StatusDuplicate
	StatusConflict
	StatusFailed
)

// Result is the structured outcome every write operation returns. Expected
// conditions never surface as Go errors; only the messages differ.
type Result struct {
	Status    Status
	CreatedID uint
	Messages  []string
}

func (r Result) Message() string {
	return strings.Join(r.Messages, "; ")
}

func Created(id uint) Result {
	return Result{Status: StatusCreated, CreatedID: id}
}

func Updated() Result {
	return Result{Status: StatusUpdated}
}

func Deleted() Result {
	return Result{Status: StatusDeleted}
}

func NotFound(msg string) Result {
	return Result{Status: StatusNotFound, Messages: []string{msg}}
}

func ReferenceNotFound(msg string) Result {
	return Result{Status: StatusReferenceNotFound, Messages: []string{msg}}
}

func Invalid(msgs ...string) Result {
	return Result{Status: StatusInvalid, Messages: msgs}
}

func Duplicate(msg string) Result {
	return Result{Status: StatusDuplicate, Messages: []string{msg}}
}

func Conflict(msg string) Result {
	return Result{Status: StatusConflict, Messages: []string{msg}}
}

func Failed(msg string) Result {
	return Result{Status: StatusFailed, Messages: []string{msg}}
}
