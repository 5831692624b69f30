package trace_test

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/csim/mem/trace"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func collect(src trace.Source) []trace.Record {
	var records []trace.Record

	for {
		rec, ok := src.Next()
		if !ok {
			return records
		}

		records = append(records, rec)
	}
}

var _ = Describe("Reader", func() {
	It("should decode records in order", func() {
		r := trace.NewReader("t", strings.NewReader(
			" L 10,1\n M 20,1\n S 18,1\n"))

		records := collect(r)

		Expect(records).To(HaveLen(3))
		Expect(records[0].Op).To(Equal(trace.Load))
		Expect(records[1].Op).To(Equal(trace.Modify))
		Expect(records[2].Address).To(Equal(uint64(0x18)))
		Expect(r.Err()).NotTo(HaveOccurred())
		Expect(r.NumSkipped()).To(Equal(0))
	})

	It("should skip malformed and blank lines", func() {
		buf := new(bytes.Buffer)
		r := trace.NewReader("t.trace", strings.NewReader(
			" L 10,1\n\ngarbage\n S 18,1\n L 20\n")).
			WithLogger(log.New(buf, "", 0))

		records := collect(r)

		Expect(records).To(HaveLen(2))
		Expect(r.NumSkipped()).To(Equal(2))
		Expect(r.Err()).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("t.trace:3: skipped"))
		Expect(buf.String()).To(ContainSubstring("t.trace:5: skipped"))
	})

	It("should skip lines longer than the line limit", func() {
		buf := new(bytes.Buffer)
		long := strings.Repeat("x", 70000)
		r := trace.NewReader("long.trace", strings.NewReader(
			" L 10,1\n"+long+"\n L 20,1\n")).
			WithLogger(log.New(buf, "", 0))

		records := collect(r)

		Expect(records).To(HaveLen(2))
		Expect(records[0].Address).To(Equal(uint64(0x10)))
		Expect(records[1].Address).To(Equal(uint64(0x20)))
		Expect(r.NumSkipped()).To(Equal(1))
		Expect(r.Err()).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("long.trace:2: skipped"))
	})

	It("should decode a final line without a newline", func() {
		r := trace.NewReader("t", strings.NewReader(" L 10,1\n S 18,1"))

		Expect(collect(r)).To(HaveLen(2))
		Expect(r.Err()).NotTo(HaveOccurred())
	})

	It("should yield nothing for an empty trace", func() {
		r := trace.NewReader("empty", strings.NewReader(""))

		Expect(collect(r)).To(BeEmpty())
		Expect(r.Err()).NotTo(HaveOccurred())
	})

	It("should report read failures", func() {
		r := trace.NewReader("broken", failingReader{})

		Expect(collect(r)).To(BeEmpty())

		var unreadable *trace.UnreadableTraceError
		Expect(errors.As(r.Err(), &unreadable)).To(BeTrue())
		Expect(unreadable.Path).To(Equal("broken"))
	})
})

var _ = Describe("Open", func() {
	It("should read a trace file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "yi.trace")
		Expect(os.WriteFile(path, []byte(" L 10,1\n M 20,1\n"), 0o644)).To(Succeed())

		f, err := trace.Open(path)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		Expect(collect(f)).To(HaveLen(2))
	})

	It("should fail on a missing file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "missing.trace")

		_, err := trace.Open(path)

		var unreadable *trace.UnreadableTraceError
		Expect(errors.As(err, &unreadable)).To(BeTrue())
		Expect(unreadable.Path).To(Equal(path))
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})
})

var _ = Describe("SliceSource", func() {
	It("should serve records once", func() {
		src := trace.NewSliceSource(
			trace.Record{Op: trace.Load, Address: 1},
			trace.Record{Op: trace.Store, Address: 2},
		)

		Expect(collect(src)).To(HaveLen(2))
		_, ok := src.Next()
		Expect(ok).To(BeFalse())
	})
})
