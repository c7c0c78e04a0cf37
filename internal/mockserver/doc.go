// Package mockserver is an in-memory stand-in for the admin console backend.
//
// It serves the same wire contract as production: snake_case records, the
// {success, data} envelope on the admin routes and a {data} wrapper on the
// message center. The dataset lives inside a Server value, so every test gets
// its own copy.
package mockserver
