package ports

// SignatureDetector infers a MIME type from a byte prefix. Pure inspection,
// no I/O. ok is false when the prefix carries no recognizable signature.
type SignatureDetector interface {
	Detect(prefix []byte) (mime string, ok bool)
}
