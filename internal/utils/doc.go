// Package utils provides small helpers shared by the client transport and
// the in-process stub service: the resty client factory and JSON response
// writing.
package utils
