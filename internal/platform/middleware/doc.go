// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware holds the decorators wrapped around every API request.

Order used by the server:

	RequestID -> StructuredLogger -> Timeout -> RateLimit -> PanicRecovery -> CORS

RequestID must run first so every later log line carries the correlation
value; PanicRecovery sits inside the logger so a recovered request is still
logged with its final status.
*/
package middleware
