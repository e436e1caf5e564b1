package status

// The registered statuses of the catalogue, grouped by class. Each value is
// built once, at package initialization, from its registered code and reason
// phrase; declaration order carries no meaning beyond readability.

// Informational responses (1xx).
var (
	Continue           = New(100, "Continue")            // RFC 9110, 15.2.1
	SwitchingProtocols = New(101, "Switching Protocols") // RFC 9110, 15.2.2
	Processing         = New(102, "Processing")          // RFC 2518, 10.1
	EarlyHints         = New(103, "Early Hints")         // RFC 8297
)

// Successful responses (2xx).
var (
	OK                          = New(200, "OK")                            // RFC 9110, 15.3.1
	Created                     = New(201, "Created")                       // RFC 9110, 15.3.2
	Accepted                    = New(202, "Accepted")                      // RFC 9110, 15.3.3
	NonAuthoritativeInformation = New(203, "Non-Authoritative Information") // RFC 9110, 15.3.4
	NoContent                   = New(204, "No Content")                    // RFC 9110, 15.3.5
	ResetContent                = New(205, "Reset Content")                 // RFC 9110, 15.3.6
	PartialContent              = New(206, "Partial Content")               // RFC 9110, 15.3.7
	MultiStatus                 = New(207, "Multi-Status")                  // RFC 4918, 11.1
	AlreadyReported             = New(208, "Already Reported")              // RFC 5842, 7.1
	IMUsed                      = New(226, "IM Used")                       // RFC 3229, 10.4.1
)

// Redirection messages (3xx). UseProxy is deprecated and SwitchProxy is
// reserved but no longer used; both stay in the catalogue for completeness.
var (
	MultipleChoices   = New(300, "Multiple Choices")   // RFC 9110, 15.4.1
	MovedPermanently  = New(301, "Moved Permanently")  // RFC 9110, 15.4.2
	Found             = New(302, "Found")              // RFC 9110, 15.4.3
	SeeOther          = New(303, "See Other")          // RFC 9110, 15.4.4
	NotModified       = New(304, "Not Modified")       // RFC 9110, 15.4.5
	UseProxy          = New(305, "Use Proxy")          // RFC 9110, 15.4.6 (deprecated)
	SwitchProxy       = New(306, "Switch Proxy")       // RFC 9110, 15.4.7 (reserved, unused)
	TemporaryRedirect = New(307, "Temporary Redirect") // RFC 9110, 15.4.8
	PermanentRedirect = New(308, "Permanent Redirect") // RFC 9110, 15.4.9
)

// Client error responses (4xx).
var (
	BadRequest                  = New(400, "Bad Request")                     // RFC 9110, 15.5.1
	Unauthorized                = New(401, "Unauthorized")                    // RFC 9110, 15.5.2
	PaymentRequired             = New(402, "Payment Required")                // RFC 9110, 15.5.3
	Forbidden                   = New(403, "Forbidden")                       // RFC 9110, 15.5.4
	NotFound                    = New(404, "Not Found")                       // RFC 9110, 15.5.5
	MethodNotAllowed            = New(405, "Method Not Allowed")              // RFC 9110, 15.5.6
	NotAcceptable               = New(406, "Not Acceptable")                  // RFC 9110, 15.5.7
	ProxyAuthenticationRequired = New(407, "Proxy Authentication Required")   // RFC 9110, 15.5.8
	RequestTimeout              = New(408, "Request Timeout")                 // RFC 9110, 15.5.9
	Conflict                    = New(409, "Conflict")                        // RFC 9110, 15.5.10
	Gone                        = New(410, "Gone")                            // RFC 9110, 15.5.11
	LengthRequired              = New(411, "Length Required")                 // RFC 9110, 15.5.12
	PreconditionFailed          = New(412, "Precondition Failed")             // RFC 9110, 15.5.13
	PayloadTooLarge             = New(413, "Payload Too Large")               // RFC 9110, 15.5.14
	URITooLong                  = New(414, "URI Too Long")                    // RFC 9110, 15.5.15
	UnsupportedMediaType        = New(415, "Unsupported Media Type")          // RFC 9110, 15.5.16
	RangeNotSatisfiable         = New(416, "Range Not Satisfiable")           // RFC 9110, 15.5.17
	ExpectationFailed           = New(417, "Expectation Failed")              // RFC 9110, 15.5.18
	ImATeapot                   = New(418, "I'm a teapot")                    // RFC 2324, 2.3.2
	MisdirectedRequest          = New(421, "Misdirected Request")             // RFC 9110, 15.5.20
	UnprocessableEntity         = New(422, "Unprocessable Entity")            // RFC 9110, 15.5.21
	Locked                      = New(423, "Locked")                          // RFC 4918, 11.3
	FailedDependency            = New(424, "Failed Dependency")               // RFC 4918, 11.4
	TooEarly                    = New(425, "Too Early")                       // RFC 8470, 5.2
	UpgradeRequired             = New(426, "Upgrade Required")                // RFC 9110, 15.5.22
	PreconditionRequired        = New(428, "Precondition Required")           // RFC 6585, 3
	TooManyRequests             = New(429, "Too Many Requests")               // RFC 6585, 4
	RequestHeaderFieldsTooLarge = New(431, "Request Header Fields Too Large") // RFC 6585, 5
	UnavailableForLegalReasons  = New(451, "Unavailable For Legal Reasons")   // RFC 7725, 3
)

// Server error responses (5xx).
var (
	InternalServerError           = New(500, "Internal Server Error")           // RFC 9110, 15.6.1
	NotImplemented                = New(501, "Not Implemented")                 // RFC 9110, 15.6.2
	BadGateway                    = New(502, "Bad Gateway")                     // RFC 9110, 15.6.3
	ServiceUnavailable            = New(503, "Service Unavailable")             // RFC 9110, 15.6.4
	GatewayTimeout                = New(504, "Gateway Timeout")                 // RFC 9110, 15.6.5
	HTTPVersionNotSupported       = New(505, "HTTP Version Not Supported")      // RFC 9110, 15.6.6
	VariantAlsoNegotiates         = New(506, "Variant Also Negotiates")         // RFC 2295, 8.1
	InsufficientStorage           = New(507, "Insufficient Storage")            // RFC 4918, 11.5
	LoopDetected                  = New(508, "Loop Detected")                   // RFC 5842, 7.2
	NotExtended                   = New(510, "Not Extended")                    // RFC 2774, 7
	NetworkAuthenticationRequired = New(511, "Network Authentication Required") // RFC 6585, 6
)
