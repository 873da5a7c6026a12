// Package api provides HTTP client functionality for communicating with the
// Skybase API. It implements the resilient request-execution pipeline shared
// by every typed endpoint: credential selection, failure classification,
// exponential-backoff retry, and transparent session-token refresh.
//
// # Credentials
//
// A [Credentials] store holds an optional API key and an optional session
// token. When both are present the API key builds the Authorization header,
// because it is project-scoped and does not expire the way a session token
// does. A caller-supplied hook fires whenever the session token changes so
// the host application can persist it.
//
// # Failure classification
//
// Every physical attempt resolves to exactly one [ErrorKind]:
//
//   - [KindNetwork]: the transport never reached the server (status 0 counts).
//   - [KindServer]: 5xx.
//   - [KindAuth]: 401.
//   - [KindClient]: any other 4xx.
//   - [KindParse]: malformed body on an otherwise successful response.
//
// # Retry behavior
//
// Network and server failures on retryable requests are retried up to
// [Config.MaxRetries] times. The wait before attempt k+1 is
// BaseDelay * 2^k (1s, 2s, 4s with the defaults), so at most MaxRetries+1
// physical sends occur per logical request. Client and parse failures never
// trigger a second send.
//
// # Token refresh
//
// A 401 on a refresh-eligible request triggers [Client.EnsureRefreshed]:
// the current session token is exchanged for a new one and the request is
// re-sent once, without consuming a retry slot. Concurrent requests that
// observe a 401 while a refresh is in flight attach to the same exchange
// instead of issuing their own, so exactly one refresh call reaches the
// server. A second 401 after a successful refresh surfaces immediately.
//
// # Thread safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
