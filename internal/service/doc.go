// Package service implements the business logic of the hotel API.
//
// Services sit between handlers and repositories: they validate input,
// enforce domain rules (booking date ranges, status transitions, role
// checks), and coordinate side effects such as image uploads. Each service
// depends on narrow repository interfaces defined in this package so tests
// can substitute lightweight fakes.
//
// All errors returned by service methods are sentinel values defined in
// errors.go; handlers map them to HTTP problem responses.
package service
