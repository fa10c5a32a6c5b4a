package ir

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestIR(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "IR Suite")
}

var _ = Describe("Arena", func() {
	var a *Arena

	BeforeEach(func() {
		a = NewArena()
	})

	It("round-trips a node through Allocate/Get", func() {
		h := Allocate(a, &StrImm{value: "hi"})
		got, ok := Get[*StrImm](a, h)
		Expect(ok).To(BeTrue())
		Expect(got.Value()).To(Equal("hi"))
	})

	It("rejects a stale handle after Dispose", func() {
		h := Allocate(a, &StrImm{value: "hi"})
		a.Dispose(h)
		_, ok := Get[*StrImm](a, h)
		Expect(ok).To(BeFalse())
	})

	It("never lets a reused slot alias an old handle's generation", func() {
		h1 := Allocate(a, &StrImm{value: "first"})
		a.Dispose(h1)
		h2 := Allocate(a, &StrImm{value: "second"})

		Expect(a.IsLive(h1)).To(BeFalse())
		Expect(a.IsLive(h2)).To(BeTrue())

		got, ok := Get[*StrImm](a, h2)
		Expect(ok).To(BeTrue())
		Expect(got.Value()).To(Equal("second"))
	})

	It("panics via MustGet on a stale handle", func() {
		h := Allocate(a, &StrImm{value: "hi"})
		a.Dispose(h)
		Expect(func() { MustGet[*StrImm](a, h) }).To(Panic())
	})
})
