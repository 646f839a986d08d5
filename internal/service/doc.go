// Package service contains the application's business rules: the request
// validation and per-owner authorization logic layered between the HTTP
// handlers and the stores.
package service
