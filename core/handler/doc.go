// Package handler defines the response rendering contract shared by the
// rest of the module: a Response renders headers and body, an
// ErrorHandler turns failures into responses, and Writer tracks whether
// a response has already been committed to the connection.
package handler
