package httpproto

import "strconv"

// Response is a status line, an optional extra-headers block, and a body.
type Response struct {
	Status       int
	Reason       string
	ExtraHeaders string
	Body         []byte
}

// Serialize writes r in the exact wire format:
//
//	HTTP/1.1 <status> <reason>\r\n
//	Content-Length: <len(body)>\r\n
//	[<extra_headers>\r\n]
//	\r\n
//	<body>
//
// The extra-headers block, including its own trailing CRLF, is omitted
// entirely when empty; there is always exactly one blank-line separator
// before the body.
func (r Response) Serialize() []byte {
	var buf []byte
	buf = append(buf, httpVersion...)
	buf = append(buf, ' ')
	buf = append(buf, strconv.Itoa(r.Status)...)
	buf = append(buf, ' ')
	buf = append(buf, r.Reason...)
	buf = append(buf, crlf...)

	buf = append(buf, "Content-Length: "...)
	buf = append(buf, strconv.Itoa(len(r.Body))...)
	buf = append(buf, crlf...)

	if r.ExtraHeaders != "" {
		buf = append(buf, r.ExtraHeaders...)
		buf = append(buf, crlf...)
	}

	buf = append(buf, crlf...)
	buf = append(buf, r.Body...)
	return buf
}
