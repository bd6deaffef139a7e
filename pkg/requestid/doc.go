// Package requestid tags HTTP requests with a correlation id.
//
// Middleware accepts an incoming X-Request-ID header when it is short and
// made of letters, digits, '-' and '_'; otherwise it generates a UUID. The id
// is stored in the request context and echoed in the response.
//
// Extractor plugs the id into the logger package, so every record logged
// with the request context carries "request_id":
//
//	log := logger.New(logger.WithContextExtractors(requestid.Extractor()))
//	r.Use(requestid.Middleware)
package requestid
