package xform_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestXform(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Xform Suite")
}
