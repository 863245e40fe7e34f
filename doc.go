// Package main provides the entry point for the Letterly content
// management service. It runs a web server using the Fiber framework
// that exposes the marketing-site content collections, site settings,
// uploaded assets and the contact form through a REST API. The
// application uses gorm for data persistence and cookie-backed
// server-side sessions to gate the admin mutation routes.
package main
