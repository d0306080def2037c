package domain

// Payload is the byte sequence retrieved for a single view request.
// It is owned by the pipeline invocation that produced it and must not be
// mutated after creation.
type Payload struct {
	bytes []byte
}

func NewPayload(b []byte) Payload {
	return Payload{bytes: b}
}

func (p Payload) Bytes() []byte {
	return p.bytes
}

func (p Payload) Size() int64 {
	return int64(len(p.bytes))
}

// Prefix returns at most the first n bytes, for signature detection.
func (p Payload) Prefix(n int) []byte {
	if n < 0 {
		n = 0
	}
	if len(p.bytes) <= n {
		return p.bytes
	}
	return p.bytes[:n]
}
