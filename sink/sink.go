package sink

// A Sink receives the UTF-8 serialization of a prepared string. The codec
// only appends; the buffer behind a Sink is owned by the caller, and two
// concurrent preparations must use distinct sinks.
type Sink interface {
	AppendByte(b byte)
	AppendUTF8Raw(c rune)
}

// Buffer is a growable byte buffer implementing Sink.
type Buffer struct {
	buf []byte
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) AppendByte(c byte) {
	b.buf = append(b.buf, c)
}

// AppendUTF8Raw writes the UTF-8 encoding of any code point <=U+10FFFF
// without validation. Code points U+D800..U+DFFF produce the three-byte
// pattern even though such sequences are ill-formed UTF-8.
//
// https://www.unicode.org/versions/Unicode13.0.0/ch03.pdf > 3.9 Unicode Encoding Forms > UTF-8 Table 3-6. UTF-8 Bit Distribution
func (b *Buffer) AppendUTF8Raw(c rune) {
	switch {
	case c <= 0x7f:
		b.buf = append(b.buf, byte(c))
	case c <= 0x7ff:
		b.buf = append(b.buf, 0xc0|byte(c>>6), 0x80|byte(c)&0x3f)
	case c <= 0xffff:
		b.buf = append(b.buf, 0xe0|byte(c>>12), 0x80|byte(c>>6)&0x3f, 0x80|byte(c)&0x3f)
	default:
		b.buf = append(b.buf, 0xf0|byte(c>>18), 0x80|byte(c>>12)&0x3f, 0x80|byte(c>>6)&0x3f, 0x80|byte(c)&0x3f)
	}
}

func (b *Buffer) Len() int {
	return len(b.buf)
}

// Bytes returns a copy of the buffer contents.
func (b *Buffer) Bytes() []byte {
	bs := make([]byte, len(b.buf))
	copy(bs, b.buf)
	return bs
}

// Reset truncates the buffer, keeping its capacity.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}
