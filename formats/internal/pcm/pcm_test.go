// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockReader behaves like the go-audio decoders: a short read with a nil
// error at the end of the data, then zero reads.
type mockReader struct {
	format  *goaudio.Format
	samples []int
	offset  int
	err     error
}

func (m *mockReader) Format() *goaudio.Format { return m.format }

func (m *mockReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

// mockWriter records what an encoder would receive.
type mockWriter struct {
	bufs     []*goaudio.IntBuffer
	closed   bool
	writeErr error
}

func (m *mockWriter) Write(buf *goaudio.IntBuffer) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.bufs = append(m.bufs, buf)
	return nil
}

func (m *mockWriter) Close() error {
	m.closed = true
	return nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	dec := &mockReader{
		format:  &goaudio.Format{SampleRate: 22050, NumChannels: 2},
		samples: []int{0, 32767, -32767, -32768, 0},
	}
	src, err := NewSource(dec, 16)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}
	if src.SampleRate() != 22050 || src.Channels() != 2 || src.BitDepth() != 16 {
		t.Fatalf("rate, channels, depth = %d, %d, %d", src.SampleRate(), src.Channels(), src.BitDepth())
	}

	buf := make([]float32, 4)
	n, err := src.ReadSamples(buf)
	if n != 4 || err != nil {
		t.Fatalf("first read = %d, %v; want 4, nil", n, err)
	}
	want := []float32{0, 1, -1, -1}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, buf[i], want[i])
		}
	}

	n, err = src.ReadSamples(buf)
	if n != 1 || !errors.Is(err, io.EOF) {
		t.Fatalf("second read = %d, %v; want 1, EOF", n, err)
	}
	if buf[0] != 0 {
		t.Errorf("last sample = %v, want 0", buf[0])
	}

	if n, err = src.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("read after end = %d, %v; want 0, EOF", n, err)
	}
}

func TestSource_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		depth int
		value int
	}{
		{16, 1<<15 - 1},
		{24, 1<<23 - 1},
		{32, 1<<31 - 1},
	}
	for _, tt := range tests {
		dec := &mockReader{
			format:  &goaudio.Format{SampleRate: 8000, NumChannels: 1},
			samples: []int{tt.value},
		}
		src, err := NewSource(dec, tt.depth)
		if err != nil {
			t.Fatalf("NewSource(%d) error = %v", tt.depth, err)
		}
		buf := make([]float32, 1)
		if _, err := src.ReadSamples(buf); err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		if buf[0] != 1 {
			t.Errorf("%d bit sample = %v, want 1", tt.depth, buf[0])
		}
	}
}

func TestNewSource_Errors(t *testing.T) {
	t.Parallel()

	format := &goaudio.Format{SampleRate: 8000, NumChannels: 1}
	if _, err := NewSource(&mockReader{format: format}, 8); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("NewSource(8 bit) error = %v, want ErrUnsupportedBitDepth", err)
	}
	if _, err := NewSource(&mockReader{}, 16); err == nil {
		t.Error("NewSource() without a format should fail")
	}
	if _, err := NewSource(&mockReader{format: &goaudio.Format{}}, 16); err == nil {
		t.Error("NewSource() with an empty format should fail")
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	dec := &mockReader{
		format: &goaudio.Format{SampleRate: 8000, NumChannels: 1},
		err:    io.ErrUnexpectedEOF,
	}
	src, err := NewSource(dec, 16)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}
	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestSeekable(t *testing.T) {
	t.Parallel()

	br := bytes.NewReader([]byte("abc"))
	if rs, err := Seekable(br); err != nil || rs != io.ReadSeeker(br) {
		t.Errorf("Seekable(bytes.Reader) = %v, %v; want the reader itself", rs, err)
	}

	rs, err := Seekable(io.MultiReader(bytes.NewReader([]byte("ab")), bytes.NewReader([]byte("cd"))))
	if err != nil {
		t.Fatalf("Seekable() error = %v", err)
	}
	if _, err := rs.Seek(2, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "cd" {
		t.Errorf("read after seek = %q, want %q", rest, "cd")
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	enc := &mockWriter{}
	if err := Encode(enc, 8000, 16, []float64{0, 0.5, -2}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !enc.closed || len(enc.bufs) != 1 {
		t.Fatalf("closed = %v, writes = %d", enc.closed, len(enc.bufs))
	}

	buf := enc.bufs[0]
	if buf.Format.SampleRate != 8000 || buf.Format.NumChannels != 1 || buf.SourceBitDepth != 16 {
		t.Errorf("buffer format = %+v, depth %d", buf.Format, buf.SourceBitDepth)
	}
	want := []int{0, 16384, -32767}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Errorf("Data[%d] = %d, want %d", i, buf.Data[i], want[i])
		}
	}

	failing := &mockWriter{writeErr: io.ErrShortWrite}
	if err := Encode(failing, 8000, 16, []float64{0}); !errors.Is(err, io.ErrShortWrite) || !failing.closed {
		t.Errorf("Encode() error = %v, closed = %v", err, failing.closed)
	}
}

func TestCreateFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(w io.WriteSeeker) error {
		_, err := w.Write([]byte("data"))
		return err
	}

	tests := []struct {
		name string
		want string
	}{
		{"take", "take.wav"},
		{"take.wav", "take.wav"},
		{"TAKE.WAV", "TAKE.WAV"},
		{"take.v2", "take.v2.wav"},
	}
	for _, tt := range tests {
		got, err := CreateFile(filepath.Join(dir, tt.name), ".wav", write)
		if err != nil {
			t.Fatalf("CreateFile(%q) error = %v", tt.name, err)
		}
		if got != filepath.Join(dir, tt.want) {
			t.Errorf("CreateFile(%q) = %q, want %q", tt.name, got, filepath.Join(dir, tt.want))
		}
		if data, _ := os.ReadFile(got); string(data) != "data" {
			t.Errorf("file %q holds %q", got, data)
		}
	}

	boom := errors.New("boom")
	if _, err := CreateFile(filepath.Join(dir, "bad"), ".wav", func(io.WriteSeeker) error { return boom }); !errors.Is(err, boom) {
		t.Errorf("CreateFile() error = %v, want %v", err, boom)
	}
}
