// Package deps resolves the external binaries encodewatch shells out to.
package deps
