package sim_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/assassyn/sim"
)

var _ = Describe("LoadHexFile", func() {
	It("parses values, comments, separators, and an origin directive", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "init.hex")
		contents := "// header comment\n@4\nde_ad_be_ef // a dword\n1\n"
		Expect(os.WriteFile(path, []byte(contents), 0o644)).To(Succeed())

		arr := make([]uint64, 8)
		Expect(sim.LoadHexFile(arr, path)).To(Succeed())
		Expect(arr[4]).To(Equal(uint64(0xdeadbeef)))
		Expect(arr[5]).To(Equal(uint64(1)))
	})
})
