// Package notifications stores the operator-facing outcome of background runs.
//
// Every finished EoX synchronization emits one message: an info message
// whose detail is the HTML change report, or an error message carrying
// the failure text. Messages are listed on GET /notifications.
package notifications
