// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// Headers are checked in order and the first valid address wins:
//
//  1. CF-Connecting-IP
//  2. DO-Connecting-IP
//  3. X-Forwarded-For (first valid entry)
//  4. X-Real-IP
//  5. RemoteAddr
//
// These headers are client controlled unless a proxy overwrites them, so
// the result is suitable for throttling and logging, not for authorization.
//
//	r.Use(clientip.Middleware)
//	ip := clientip.FromContext(ctx)
package clientip
